package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotContentType tags the shape a generated slot value must have
type SlotContentType string

const (
	SlotTypeVocabulary SlotContentType = "vocabulary"
	SlotTypeDialogue   SlotContentType = "dialogue"
	SlotTypeExercise   SlotContentType = "exercise"
	SlotTypeText       SlotContentType = "text"
)

// TemplateSlot is a named field the generator must fill
type TemplateSlot struct {
	Id             uuid.UUID
	PlaceholderKey string // Unique within the template, used as JSON key in model output
	ContentType    SlotContentType
	Position       int
	Instruction    string // Optional per-slot guidance injected into the prompt
}

// LessonTemplate defines the structural contract for generated material.
// Templates are immutable once handed to the generation pipeline -
// admin tooling mutates them out-of-band.
type LessonTemplate struct {
	Id        uuid.UUID
	Category  string // e.g. "Travel", "Business"
	Level     string // CEFR level, e.g. "B1"
	Name      string
	Slots     []TemplateSlot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlaceholderKeys returns slot keys in template order
func (t *LessonTemplate) PlaceholderKeys() []string {
	keys := make([]string, len(t.Slots))
	for i, slot := range t.Slots {
		keys[i] = slot.PlaceholderKey
	}
	return keys
}

// SlotByKey looks up a slot by its placeholder key
func (t *LessonTemplate) SlotByKey(key string) (*TemplateSlot, bool) {
	for i := range t.Slots {
		if t.Slots[i].PlaceholderKey == key {
			return &t.Slots[i], true
		}
	}
	return nil, false
}
