package entity

import "github.com/google/uuid"

// StudentProfile carries the personalization inputs for one generation call
type StudentProfile struct {
	StudentId      uuid.UUID
	Level          string // Proficiency, e.g. "A2"
	TargetLanguage string
	NativeLanguage string
	Goals          []string
	SeenWords      []string // Vocabulary already studied; generation biases away from these
}

// SubTopic identifies the unit of content being generated
type SubTopic struct {
	LessonId uuid.UUID
	Category string
	Title    string
	Position int
}

// GenerationRequest bundles everything one generation call needs.
// Ephemeral - never persisted.
type GenerationRequest struct {
	Profile  StudentProfile
	SubTopic SubTopic
	Template *LessonTemplate
}
