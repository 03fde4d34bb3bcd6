package fallback

import (
	"fmt"
	"strings"

	"ai-tutoring-be/internal/entity"
)

// Synthesize produces deterministic, structurally valid placeholder content
// for every slot of the template. It is total: whatever the state of the
// model or the parser, the student still receives usable material. Values
// derive from the request (sub-topic title, level) so two fallbacks for the
// same unit are identical.
func Synthesize(template *entity.LessonTemplate, req *entity.GenerationRequest) *entity.StructuredContent {
	values := make(map[string]entity.SlotValue, len(template.Slots))
	for _, slot := range template.Slots {
		values[slot.PlaceholderKey] = slotFallback(slot, req)
	}
	return &entity.StructuredContent{
		Source: entity.SourceFallback,
		Values: values,
	}
}

func slotFallback(slot entity.TemplateSlot, req *entity.GenerationRequest) entity.SlotValue {
	topic := strings.TrimSpace(req.SubTopic.Title)
	if topic == "" {
		topic = req.SubTopic.Category
	}
	level := req.Profile.Level
	if level == "" {
		level = req.Template.Level
	}

	value := entity.SlotValue{ContentType: slot.ContentType}

	switch slot.ContentType {
	case entity.SlotTypeVocabulary:
		value.Vocabulary = vocabularyFallback(topic)
	case entity.SlotTypeDialogue:
		value.Dialogue = []entity.DialogueLine{
			{Speaker: "Tutor", Line: fmt.Sprintf("Today we are talking about %s. Are you ready?", topic)},
			{Speaker: "Student", Line: "Yes, I am ready. Where do we start?"},
			{Speaker: "Tutor", Line: fmt.Sprintf("Let's start with the words you already know about %s.", topic)},
			{Speaker: "Student", Line: "Okay, I will try to use them in a sentence."},
		}
	case entity.SlotTypeExercise:
		value.Exercises = []entity.ExerciseItem{
			{
				Prompt: fmt.Sprintf("Write three sentences about %s.", topic),
				Answer: "Free answer; any grammatically complete sentences on the topic.",
			},
			{
				Prompt: fmt.Sprintf("List five words you associate with %s and explain one of them.", topic),
				Answer: "Free answer; one short explanation is enough.",
			},
		}
	default:
		value.Text = fmt.Sprintf(
			"This is placeholder study material for %q (level %s). "+
				"The personalized version could not be generated right now; "+
				"use this unit to review what you already know about the topic.",
			topic, level,
		)
	}

	return value
}

// vocabularyFallback builds a small fixed-shape list seeded from the topic
// words themselves, annotated as placeholder so it is never mistaken for
// generated vocabulary.
func vocabularyFallback(topic string) []entity.VocabularyEntry {
	words := strings.Fields(strings.ToLower(topic))
	if len(words) > 3 {
		words = words[:3]
	}
	if len(words) == 0 {
		words = []string{"lesson"}
	}

	entries := make([]entity.VocabularyEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, entity.VocabularyEntry{
			Word:         w,
			Definition:   fmt.Sprintf("Placeholder entry: review the meaning of %q in the context of %s.", w, topic),
			PartOfSpeech: "unknown",
			Examples:     []string{fmt.Sprintf("(placeholder) Use %q in a sentence about %s.", w, topic)},
		})
	}
	return entries
}
