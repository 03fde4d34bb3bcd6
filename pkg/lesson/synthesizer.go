package lesson

import (
	"context"
	"errors"
	"time"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/pkg/lesson/extract"
	"ai-tutoring-be/pkg/lesson/prompt"
	"ai-tutoring-be/pkg/llm"
)

// Outcome classifies one generation attempt. Degraded outcomes signal the
// caller to substitute fallback content; they are never surfaced to the
// student as errors.
type Outcome string

const (
	OutcomeOK              Outcome = "OK"
	OutcomeDegradedTimeout Outcome = "DEGRADED_TIMEOUT"
	OutcomeDegradedModel   Outcome = "DEGRADED_MODEL_UNAVAILABLE"
	OutcomeDegradedParse   Outcome = "DEGRADED_PARSE_FAILED"
)

// Degraded reports whether the caller must substitute fallback content
func (o Outcome) Degraded() bool {
	return o != OutcomeOK
}

// Synthesizer builds the prompt, performs exactly one bounded model call per
// request and hands the raw text to the extractor. No retry loop lives here;
// retries are a caller/backoff concern.
type Synthesizer struct {
	provider    llm.LLMProvider
	timeout     time.Duration
	temperature float64
	logger      logger.ILogger
}

func NewSynthesizer(provider llm.LLMProvider, timeout time.Duration, temperature float64, log logger.ILogger) *Synthesizer {
	return &Synthesizer{
		provider:    provider,
		timeout:     timeout,
		temperature: temperature,
		logger:      log,
	}
}

// Generate returns validated structured content on success, or a nil content
// with a degraded outcome. It has no side effects beyond the model call.
func (s *Synthesizer) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.StructuredContent, Outcome) {
	p := prompt.Build(req)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rawText, err := s.provider.Generate(callCtx, p, llm.WithTemperature(s.temperature))
	if err != nil {
		outcome := OutcomeDegradedModel
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() != nil {
			outcome = OutcomeDegradedTimeout
		}
		s.logger.Warn("SYNTHESIZER", "Model call failed, caller will fall back", map[string]interface{}{
			"error":     err.Error(),
			"outcome":   string(outcome),
			"sub_topic": req.SubTopic.Title,
		})
		return nil, outcome
	}

	content, err := extract.Extract(rawText, req.Template)
	if err != nil {
		s.logger.Warn("SYNTHESIZER", "Extraction failed, caller will fall back", map[string]interface{}{
			"error":     err.Error(),
			"sub_topic": req.SubTopic.Title,
			"raw_len":   len(rawText),
		})
		return nil, OutcomeDegradedParse
	}

	return content, OutcomeOK
}
