package service

import (
	"context"

	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/pkg/lesson"
	"ai-tutoring-be/pkg/lesson/fallback"
	"ai-tutoring-be/pkg/lesson/template"
)

type ILessonService interface {
	GenerateLessonContent(ctx context.Context, req *dto.GenerateLessonRequest) (*dto.GenerateLessonResponse, error)
}

// lessonService runs the sequential generation pipeline: resolve template,
// synthesize, substitute fallback on degradation. Model and parse failures
// never escape this layer; only a missing template is fatal.
type lessonService struct {
	registry    *template.Registry
	synthesizer *lesson.Synthesizer
	logger      logger.ILogger
}

func NewLessonService(
	registry *template.Registry,
	synthesizer *lesson.Synthesizer,
	log logger.ILogger,
) ILessonService {
	return &lessonService{
		registry:    registry,
		synthesizer: synthesizer,
		logger:      log,
	}
}

func (s *lessonService) GenerateLessonContent(ctx context.Context, req *dto.GenerateLessonRequest) (*dto.GenerateLessonResponse, error) {
	tmpl, match, err := s.registry.Resolve(ctx, req.Category, req.Level)
	if err != nil {
		return nil, err
	}

	genReq := &entity.GenerationRequest{
		Profile: entity.StudentProfile{
			StudentId:      req.StudentId,
			Level:          req.Level,
			TargetLanguage: req.TargetLanguage,
			NativeLanguage: req.NativeLanguage,
			Goals:          req.Goals,
			SeenWords:      req.SeenWords,
		},
		SubTopic: entity.SubTopic{
			LessonId: req.LessonId,
			Category: req.Category,
			Title:    req.SubTopicTitle,
			Position: req.SubTopicIndex,
		},
		Template: tmpl,
	}

	content, outcome := s.synthesizer.Generate(ctx, genReq)
	if outcome.Degraded() {
		s.logger.Info("LESSON_SERVICE", "Substituting fallback content", map[string]interface{}{
			"outcome":   string(outcome),
			"student":   req.StudentId.String(),
			"sub_topic": req.SubTopicTitle,
		})
		content = fallback.Synthesize(tmpl, genReq)
	}

	logicalUnitId := entity.LogicalUnitID(req.Category, req.LessonId, req.SubTopicTitle)

	return &dto.GenerateLessonResponse{
		LogicalUnitId: logicalUnitId,
		TemplateId:    tmpl.Id,
		Level:         tmpl.Level,
		LevelFallback: match == template.MatchLevelFallback,
		Source:        string(content.Source),
		Slots:         mapContentToSlots(content, tmpl),
	}, nil
}

// mapContentToSlots renders structured content in template slot order
func mapContentToSlots(content *entity.StructuredContent, tmpl *entity.LessonTemplate) []dto.SlotContentResponse {
	slots := make([]dto.SlotContentResponse, 0, len(tmpl.Slots))
	for _, slot := range tmpl.Slots {
		value := content.Values[slot.PlaceholderKey]
		res := dto.SlotContentResponse{
			PlaceholderKey: slot.PlaceholderKey,
			ContentType:    string(slot.ContentType),
			Text:           value.Text,
		}

		for _, v := range value.Vocabulary {
			res.Vocabulary = append(res.Vocabulary, dto.VocabularyEntryResponse{
				Word:         v.Word,
				Definition:   v.Definition,
				PartOfSpeech: v.PartOfSpeech,
				Examples:     v.Examples,
			})
		}
		for _, d := range value.Dialogue {
			res.Dialogue = append(res.Dialogue, dto.DialogueLineResponse{
				Speaker: d.Speaker,
				Line:    d.Line,
			})
		}
		for _, e := range value.Exercises {
			res.Exercises = append(res.Exercises, dto.ExerciseItemResponse{
				Prompt: e.Prompt,
				Answer: e.Answer,
			})
		}

		slots = append(slots, res)
	}
	return slots
}
