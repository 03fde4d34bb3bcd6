package dto

import (
	"github.com/google/uuid"
)

type GenerateLessonRequest struct {
	StudentId      uuid.UUID `json:"student_id" validate:"required"`
	Level          string    `json:"level" validate:"required"`
	TargetLanguage string    `json:"target_language" validate:"required"`
	NativeLanguage string    `json:"native_language"`
	Goals          []string  `json:"goals"`
	SeenWords      []string  `json:"seen_words"`
	LessonId       uuid.UUID `json:"lesson_id" validate:"required"`
	Category       string    `json:"category" validate:"required"`
	SubTopicTitle  string    `json:"sub_topic_title" validate:"required"`
	SubTopicIndex  int       `json:"sub_topic_index"`
}

type VocabularyEntryResponse struct {
	Word         string   `json:"word"`
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"part_of_speech"`
	Examples     []string `json:"examples"`
}

type DialogueLineResponse struct {
	Speaker string `json:"speaker"`
	Line    string `json:"line"`
}

type ExerciseItemResponse struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// SlotContentResponse carries exactly one populated value field, selected by
// ContentType
type SlotContentResponse struct {
	PlaceholderKey string                    `json:"placeholder_key"`
	ContentType    string                    `json:"content_type"`
	Vocabulary     []VocabularyEntryResponse `json:"vocabulary,omitempty"`
	Dialogue       []DialogueLineResponse    `json:"dialogue,omitempty"`
	Exercises      []ExerciseItemResponse    `json:"exercises,omitempty"`
	Text           string                    `json:"text,omitempty"`
}

type GenerateLessonResponse struct {
	LogicalUnitId uuid.UUID             `json:"logical_unit_id"`
	TemplateId    uuid.UUID             `json:"template_id"`
	Level         string                `json:"level"`
	LevelFallback bool                  `json:"level_fallback"` // True when no exact-level template existed
	Source        string                `json:"source"`         // "ai_generated" or "fallback"
	Slots         []SlotContentResponse `json:"slots"`
}
