package prompt

import (
	"fmt"
	"strings"

	"ai-tutoring-be/internal/entity"
)

// Build assembles the single generation prompt for one request. The model is
// instructed to return one JSON document whose keys are exactly the
// template's placeholder keys; everything else downstream (extractor,
// fallback) assumes this contract was at least attempted.
func Build(req *entity.GenerationRequest) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are a language tutoring content generator.\n")
	prompt.WriteString("You produce personalized lesson material as structured JSON.\n")
	prompt.WriteString("You do NOT chat with the student. You only emit the requested document.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<student_profile>\n")
	prompt.WriteString(fmt.Sprintf("PROFICIENCY_LEVEL: %s\n", req.Profile.Level))
	prompt.WriteString(fmt.Sprintf("TARGET_LANGUAGE: %s\n", req.Profile.TargetLanguage))
	prompt.WriteString(fmt.Sprintf("NATIVE_LANGUAGE: %s\n", req.Profile.NativeLanguage))
	if len(req.Profile.Goals) > 0 {
		prompt.WriteString(fmt.Sprintf("GOALS: %s\n", strings.Join(req.Profile.Goals, ", ")))
	}
	prompt.WriteString("</student_profile>\n\n")

	prompt.WriteString("<lesson_context>\n")
	prompt.WriteString(fmt.Sprintf("CATEGORY: %s\n", req.SubTopic.Category))
	prompt.WriteString(fmt.Sprintf("SUB_TOPIC: %s\n", req.SubTopic.Title))
	prompt.WriteString(fmt.Sprintf("TEMPLATE_LEVEL: %s\n", req.Template.Level))
	prompt.WriteString("</lesson_context>\n\n")

	if len(req.Profile.SeenWords) > 0 {
		prompt.WriteString("<already_studied>\n")
		prompt.WriteString("The student has ALREADY studied these words. Do NOT include any of them\n")
		prompt.WriteString("in vocabulary lists or as the focus of exercises:\n")
		prompt.WriteString(strings.Join(req.Profile.SeenWords, ", "))
		prompt.WriteString("\n</already_studied>\n\n")
	}

	prompt.WriteString("<content_requirements>\n")
	prompt.WriteString("Fill EVERY field below. Field-by-field requirements:\n\n")
	for _, slot := range req.Template.Slots {
		prompt.WriteString(fmt.Sprintf("%q (%s): %s\n", slot.PlaceholderKey, slot.ContentType, slotRequirement(slot)))
		if slot.Instruction != "" {
			prompt.WriteString("  Additional guidance: " + slot.Instruction + "\n")
		}
	}
	prompt.WriteString("</content_requirements>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON, no prose, no markdown fences.\n")
	prompt.WriteString("The document must have EXACTLY these keys and no others:\n")
	prompt.WriteString("{\n")
	for i, slot := range req.Template.Slots {
		comma := ","
		if i == len(req.Template.Slots)-1 {
			comma = ""
		}
		prompt.WriteString(fmt.Sprintf("  %q: %s%s\n", slot.PlaceholderKey, exampleShape(slot.ContentType), comma))
	}
	prompt.WriteString("}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

func slotRequirement(slot entity.TemplateSlot) string {
	switch slot.ContentType {
	case entity.SlotTypeVocabulary:
		return "5-8 vocabulary entries relevant to the sub-topic, adjusted to the proficiency level"
	case entity.SlotTypeDialogue:
		return "a short two-person dialogue (6-10 lines) situated in the sub-topic"
	case entity.SlotTypeExercise:
		return "3-5 practice tasks with model answers"
	case entity.SlotTypeText:
		return "a short explanatory text (3-5 sentences) at the student's level"
	default:
		return "content appropriate for the sub-topic"
	}
}

func exampleShape(contentType entity.SlotContentType) string {
	switch contentType {
	case entity.SlotTypeVocabulary:
		return `[{"word": "...", "definition": "...", "part_of_speech": "...", "examples": ["..."]}]`
	case entity.SlotTypeDialogue:
		return `[{"speaker": "...", "line": "..."}]`
	case entity.SlotTypeExercise:
		return `[{"prompt": "...", "answer": "..."}]`
	default:
		return `"..."`
	}
}
