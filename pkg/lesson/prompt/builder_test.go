package prompt

import (
	"strings"
	"testing"

	"ai-tutoring-be/internal/entity"

	"github.com/google/uuid"
)

func testRequest() *entity.GenerationRequest {
	return &entity.GenerationRequest{
		Profile: entity.StudentProfile{
			StudentId:      uuid.New(),
			Level:          "B1",
			TargetLanguage: "English",
			NativeLanguage: "Spanish",
			Goals:          []string{"pass the B2 exam"},
		},
		SubTopic: entity.SubTopic{
			LessonId: uuid.New(),
			Category: "travel",
			Title:    "Booking a Hotel Room",
		},
		Template: &entity.LessonTemplate{
			Category: "travel",
			Level:    "B1",
			Slots: []entity.TemplateSlot{
				{PlaceholderKey: "key_vocabulary", ContentType: entity.SlotTypeVocabulary, Instruction: "Focus on booking phrases"},
				{PlaceholderKey: "sample_dialogue", ContentType: entity.SlotTypeDialogue},
				{PlaceholderKey: "cultural_note", ContentType: entity.SlotTypeText},
			},
		},
	}
}

func TestBuildContainsAllPlaceholderKeys(t *testing.T) {
	req := testRequest()
	p := Build(req)

	for _, key := range req.Template.PlaceholderKeys() {
		if !strings.Contains(p, `"`+key+`"`) {
			t.Errorf("prompt missing placeholder key %q", key)
		}
	}
	if !strings.Contains(p, "ONLY valid JSON") {
		t.Error("prompt missing JSON-only output instruction")
	}
	if !strings.Contains(p, "Booking a Hotel Room") {
		t.Error("prompt missing sub-topic title")
	}
	if !strings.Contains(p, "Focus on booking phrases") {
		t.Error("prompt missing slot instruction")
	}
}

func TestBuildExcludesSeenWords(t *testing.T) {
	req := testRequest()
	req.Profile.SeenWords = []string{"hotel", "reception", "reservation"}

	p := Build(req)

	if !strings.Contains(p, "<already_studied>") {
		t.Fatal("prompt missing already_studied section")
	}
	for _, w := range req.Profile.SeenWords {
		if !strings.Contains(p, w) {
			t.Errorf("prompt missing seen word %q", w)
		}
	}
	if !strings.Contains(p, "Do NOT include") {
		t.Error("prompt missing exclusion instruction")
	}
}

func TestBuildOmitsEmptySections(t *testing.T) {
	req := testRequest()
	req.Profile.SeenWords = nil
	req.Profile.Goals = nil

	p := Build(req)

	if strings.Contains(p, "<already_studied>") {
		t.Error("already_studied section present without seen words")
	}
	if strings.Contains(p, "GOALS:") {
		t.Error("goals line present without goals")
	}
}
