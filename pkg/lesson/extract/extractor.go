package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ai-tutoring-be/internal/entity"
)

// ErrParseFailed means no recovery strategy produced a document satisfying
// the template's required-slot set. The caller substitutes fallback content;
// a partially-populated document is never returned.
var ErrParseFailed = errors.New("no valid document recovered from model output")

var (
	// ```json ... ``` or bare ``` ... ``` blocks; models wrap output despite instructions
	fenceRe = regexp.MustCompile("(?s)```(?:[a-zA-Z]+)?\\s*(.*?)```")
	// Reasoning-model thinking blocks are never content
	thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

// Vendor sentinel tokens that leak into completions
var sentinelReplacer = strings.NewReplacer(
	"<|im_start|>", "",
	"<|im_end|>", "",
	"<|endoftext|>", "",
	"<|eot_id|>", "",
	"[INST]", "",
	"[/INST]", "",
	"<s>", "",
	"</s>", "",
)

// Extract recovers one structured document from raw model output. Strategies
// apply in order; the first candidate that parses as JSON AND satisfies
// every template slot wins. Slot values with the wrong shape for their
// declared content type count as missing.
func Extract(rawText string, template *entity.LessonTemplate) (*entity.StructuredContent, error) {
	cleaned := stripArtifacts(rawText)

	// Later strategies scan the untrimmed text; the first balanced object is
	// not always the document.
	candidates := []string{
		strings.TrimSpace(trimAfterBalanced(cleaned)),
		braceSlice(cleaned),
		largestBalancedSpan(cleaned),
	}

	var lastErr error
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		content, err := decodeDocument(candidate, template)
		if err == nil {
			return content, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, lastErr)
	}
	return nil, ErrParseFailed
}

// stripArtifacts removes known non-content noise: markdown fences, vendor
// sentinel tokens and reasoning blocks.
func stripArtifacts(raw string) string {
	text := thinkRe.ReplaceAllString(raw, "")
	text = sentinelReplacer.Replace(text)

	// Prefer the inside of a fenced block when one exists
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	} else {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```", "")
	}

	return strings.TrimSpace(text)
}

// trimAfterBalanced cuts everything after the close of the first balanced
// top-level object, which drops "Hope that helps!"-style postscripts.
// Truncated output (never balancing) passes through unchanged.
func trimAfterBalanced(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return s
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '{':
			depth++
		case !inString && c == '}':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return s
}

// braceSlice tolerates leading commentary by slicing from the first '{' to
// the last '}'
func braceSlice(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// largestBalancedSpan scans for every balanced top-level {...} span and
// returns the widest one. Catches documents buried between multiple JSON-ish
// fragments.
func largestBalancedSpan(s string) string {
	best := ""
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		span := trimAfterBalanced(s[i:])
		if !strings.HasSuffix(span, "}") {
			continue // never balanced, truncated tail
		}
		if len(span) > len(best) {
			best = span
		}
		i += len(span) - 1
	}
	return best
}

// decodeDocument parses candidate JSON and validates it against the
// template's slot set. Every placeholder key must be present with a value of
// the declared shape.
func decodeDocument(doc string, template *entity.LessonTemplate) (*entity.StructuredContent, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &fields); err != nil {
		return nil, err
	}

	values := make(map[string]entity.SlotValue, len(template.Slots))
	for _, slot := range template.Slots {
		raw, ok := fields[slot.PlaceholderKey]
		if !ok {
			return nil, fmt.Errorf("missing slot %q", slot.PlaceholderKey)
		}
		value, err := decodeSlotValue(slot, raw)
		if err != nil {
			// Wrong shape is equivalent to a missing slot
			return nil, fmt.Errorf("slot %q: %w", slot.PlaceholderKey, err)
		}
		values[slot.PlaceholderKey] = value
	}

	return &entity.StructuredContent{
		Source: entity.SourceAIGenerated,
		Values: values,
	}, nil
}

func decodeSlotValue(slot entity.TemplateSlot, raw json.RawMessage) (entity.SlotValue, error) {
	value := entity.SlotValue{ContentType: slot.ContentType}

	switch slot.ContentType {
	case entity.SlotTypeVocabulary:
		var entries []entity.VocabularyEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return value, fmt.Errorf("not a vocabulary list: %w", err)
		}
		if len(entries) == 0 {
			return value, errors.New("empty vocabulary list")
		}
		for _, e := range entries {
			if e.Word == "" || e.Definition == "" {
				return value, errors.New("vocabulary entry missing word or definition")
			}
		}
		value.Vocabulary = entries

	case entity.SlotTypeDialogue:
		var lines []entity.DialogueLine
		if err := json.Unmarshal(raw, &lines); err != nil {
			return value, fmt.Errorf("not a dialogue: %w", err)
		}
		if len(lines) == 0 {
			return value, errors.New("empty dialogue")
		}
		for _, l := range lines {
			if l.Speaker == "" || l.Line == "" {
				return value, errors.New("dialogue line missing speaker or text")
			}
		}
		value.Dialogue = lines

	case entity.SlotTypeExercise:
		var items []entity.ExerciseItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return value, fmt.Errorf("not an exercise list: %w", err)
		}
		if len(items) == 0 {
			return value, errors.New("empty exercise list")
		}
		for _, item := range items {
			if item.Prompt == "" {
				return value, errors.New("exercise item missing prompt")
			}
		}
		value.Exercises = items

	case entity.SlotTypeText:
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return value, fmt.Errorf("not a text value: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			return value, errors.New("empty text value")
		}
		value.Text = text

	default:
		return value, fmt.Errorf("unknown content type %q", slot.ContentType)
	}

	return value, nil
}

// EncodeDocument renders structured content back to the canonical JSON shape
// the prompt asks for. Extracting this encoding yields the same content, so
// generated documents can be re-ingested (round-trip stability).
func EncodeDocument(content *entity.StructuredContent, template *entity.LessonTemplate) (string, error) {
	doc := make(map[string]interface{}, len(template.Slots))
	for _, slot := range template.Slots {
		value, ok := content.Values[slot.PlaceholderKey]
		if !ok {
			return "", fmt.Errorf("content missing slot %q", slot.PlaceholderKey)
		}
		switch slot.ContentType {
		case entity.SlotTypeVocabulary:
			doc[slot.PlaceholderKey] = value.Vocabulary
		case entity.SlotTypeDialogue:
			doc[slot.PlaceholderKey] = value.Dialogue
		case entity.SlotTypeExercise:
			doc[slot.PlaceholderKey] = value.Exercises
		default:
			doc[slot.PlaceholderKey] = value.Text
		}
	}
	encoded, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
