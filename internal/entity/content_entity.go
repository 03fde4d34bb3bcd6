package entity

// ContentSource flags how a document was produced. Callers may surface it as
// a quality indicator; it never turns into a hard error.
type ContentSource string

const (
	SourceAIGenerated ContentSource = "ai_generated"
	SourceFallback    ContentSource = "fallback"
)

// VocabularyEntry is one record of a vocabulary slot value
type VocabularyEntry struct {
	Word         string   `json:"word"`
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"part_of_speech"`
	Examples     []string `json:"examples"`
}

// DialogueLine is one turn of a dialogue slot value
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Line    string `json:"line"`
}

// ExerciseItem is one task of an exercise slot value
type ExerciseItem struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// SlotValue is a typed union; exactly the field matching ContentType is set
type SlotValue struct {
	ContentType SlotContentType
	Vocabulary  []VocabularyEntry
	Dialogue    []DialogueLine
	Exercises   []ExerciseItem
	Text        string
}

// StructuredContent maps every placeholder key of a template to a validated
// slot value. The pipeline never returns a partial document: on any failure
// the fallback generator supplies the remaining structure.
type StructuredContent struct {
	Source ContentSource
	Values map[string]SlotValue
}

// IsComplete reports whether every slot of the template has a type-valid value
func (c *StructuredContent) IsComplete(template *LessonTemplate) bool {
	for _, slot := range template.Slots {
		value, ok := c.Values[slot.PlaceholderKey]
		if !ok || value.ContentType != slot.ContentType {
			return false
		}
	}
	return true
}
