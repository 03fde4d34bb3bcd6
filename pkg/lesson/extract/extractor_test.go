package extract

import (
	"errors"
	"testing"

	"ai-tutoring-be/internal/entity"
)

func testTemplate() *entity.LessonTemplate {
	return &entity.LessonTemplate{
		Category: "travel",
		Level:    "B1",
		Name:     "Travel Basics",
		Slots: []entity.TemplateSlot{
			{PlaceholderKey: "key_vocabulary", ContentType: entity.SlotTypeVocabulary, Position: 0},
			{PlaceholderKey: "sample_dialogue", ContentType: entity.SlotTypeDialogue, Position: 1},
			{PlaceholderKey: "cultural_note", ContentType: entity.SlotTypeText, Position: 2},
		},
	}
}

const validDoc = `{
	"key_vocabulary": [{"word": "luggage", "definition": "bags you travel with", "part_of_speech": "noun", "examples": ["My luggage is heavy."]}],
	"sample_dialogue": [{"speaker": "Agent", "line": "Can I see your passport?"}, {"speaker": "Traveler", "line": "Here you go."}],
	"cultural_note": "In many airports you must keep your boarding pass visible."
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "clean json",
			raw:  validDoc,
		},
		{
			name: "fenced json with surrounding prose",
			raw:  "Sure! Here is your lesson:\n```json\n" + validDoc + "\n```\nHope that helps!",
		},
		{
			name: "bare fence without language tag",
			raw:  "```\n" + validDoc + "\n```",
		},
		{
			name: "leading commentary and trailing postscript",
			raw:  "Here is the JSON you asked for: " + validDoc + " Let me know if you need anything else.",
		},
		{
			name: "think block and sentinel tokens",
			raw:  "<think>I should produce travel vocabulary now.</think><|im_start|>" + validDoc + "<|im_end|>",
		},
		{
			name: "document buried between json fragments",
			raw:  `{"noise": true} ` + validDoc + ` {"more": 1}`,
		},
		{
			name:    "truncated output",
			raw:     validDoc[:len(validDoc)-40],
			wantErr: true,
		},
		{
			name:    "missing slot",
			raw:     `{"key_vocabulary": [{"word": "visa", "definition": "entry permit"}], "cultural_note": "note"}`,
			wantErr: true,
		},
		{
			name:    "wrong shape for vocabulary slot",
			raw:     `{"key_vocabulary": "luggage, passport", "sample_dialogue": [{"speaker": "A", "line": "hi"}], "cultural_note": "note"}`,
			wantErr: true,
		},
		{
			name:    "empty dialogue",
			raw:     `{"key_vocabulary": [{"word": "visa", "definition": "entry permit"}], "sample_dialogue": [], "cultural_note": "note"}`,
			wantErr: true,
		},
		{
			name:    "vocabulary entry without definition",
			raw:     `{"key_vocabulary": [{"word": "visa"}], "sample_dialogue": [{"speaker": "A", "line": "hi"}], "cultural_note": "note"}`,
			wantErr: true,
		},
		{
			name:    "blank text slot",
			raw:     `{"key_vocabulary": [{"word": "visa", "definition": "entry permit"}], "sample_dialogue": [{"speaker": "A", "line": "hi"}], "cultural_note": "  "}`,
			wantErr: true,
		},
		{
			name:    "no json at all",
			raw:     "I'm sorry, I cannot generate that lesson.",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	tmpl := testTemplate()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := Extract(tt.raw, tmpl)

			if tt.wantErr {
				if !errors.Is(err, ErrParseFailed) {
					t.Fatalf("error = %v, want ErrParseFailed", err)
				}
				if content != nil {
					t.Fatalf("content = %+v, want nil on failure", content)
				}
				return
			}

			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if content.Source != entity.SourceAIGenerated {
				t.Errorf("Source = %q, want %q", content.Source, entity.SourceAIGenerated)
			}
			if !content.IsComplete(tmpl) {
				t.Errorf("document incomplete: %+v", content.Values)
			}
		})
	}
}

func TestExtractNeverReturnsPartialDocument(t *testing.T) {
	// Two of three slots valid; the result must still be a hard failure
	raw := `{
		"key_vocabulary": [{"word": "visa", "definition": "entry permit"}],
		"sample_dialogue": [{"speaker": "A", "line": "hi"}],
		"cultural_note": 42
	}`

	content, err := Extract(raw, testTemplate())
	if !errors.Is(err, ErrParseFailed) {
		t.Fatalf("error = %v, want ErrParseFailed", err)
	}
	if content != nil {
		t.Fatalf("content = %+v, want nil", content)
	}
}

func TestEncodeDocumentRoundTrip(t *testing.T) {
	tmpl := testTemplate()

	original, err := Extract(validDoc, tmpl)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	encoded, err := EncodeDocument(original, tmpl)
	if err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}

	reparsed, err := Extract(encoded, tmpl)
	if err != nil {
		t.Fatalf("re-Extract() error = %v", err)
	}

	for key, want := range original.Values {
		got := reparsed.Values[key]
		if got.Text != want.Text ||
			len(got.Vocabulary) != len(want.Vocabulary) ||
			len(got.Dialogue) != len(want.Dialogue) ||
			len(got.Exercises) != len(want.Exercises) {
			t.Errorf("slot %q changed across round trip: got %+v, want %+v", key, got, want)
		}
	}
}

func TestTrimAfterBalanced(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "postscript after object",
			in:   `{"a": 1} and that's all!`,
			want: `{"a": 1}`,
		},
		{
			name: "brace inside string does not close early",
			in:   `{"a": "}"} tail`,
			want: `{"a": "}"}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"a": "say \"}\" now"} tail`,
			want: `{"a": "say \"}\" now"}`,
		},
		{
			name: "truncated object passes through",
			in:   `{"a": {"b": 1}`,
			want: `{"a": {"b": 1}`,
		},
		{
			name: "no object at all",
			in:   `plain text`,
			want: `plain text`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimAfterBalanced(tt.in); got != tt.want {
				t.Errorf("trimAfterBalanced(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
