package lesson

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/pkg/llm"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeProvider returns a canned response, records the prompt it received,
// and can simulate failure modes
type fakeProvider struct {
	response string
	err      error
	block    bool // Hold the call until the context ends
	prompt   string
}

func (p *fakeProvider) Chat(ctx context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return p.Generate(ctx, "")
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, _ ...llm.Option) (string, error) {
	p.prompt = prompt
	if p.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func testRequest() *entity.GenerationRequest {
	return &entity.GenerationRequest{
		Profile: entity.StudentProfile{
			StudentId: uuid.New(),
			Level:     "B1",
		},
		SubTopic: entity.SubTopic{
			LessonId: uuid.New(),
			Category: "travel",
			Title:    "At the Airport",
		},
		Template: &entity.LessonTemplate{
			Category: "travel",
			Level:    "B1",
			Slots: []entity.TemplateSlot{
				{PlaceholderKey: "cultural_note", ContentType: entity.SlotTypeText},
			},
		},
	}
}

func TestGenerateSuccess(t *testing.T) {
	provider := &fakeProvider{response: `{"cultural_note": "Arrive two hours before departure."}`}
	s := NewSynthesizer(provider, time.Second, 0.7, nopLogger{})

	content, outcome := s.Generate(context.Background(), testRequest())

	if outcome != OutcomeOK {
		t.Fatalf("outcome = %q, want OK", outcome)
	}
	if content == nil || content.Source != entity.SourceAIGenerated {
		t.Fatalf("content = %+v, want ai_generated document", content)
	}
	if provider.prompt == "" {
		t.Error("provider never received a prompt")
	}
}

func TestGenerateMalformedOutput(t *testing.T) {
	provider := &fakeProvider{response: "I'd be happy to help with that lesson!"}
	s := NewSynthesizer(provider, time.Second, 0.7, nopLogger{})

	content, outcome := s.Generate(context.Background(), testRequest())

	if outcome != OutcomeDegradedParse {
		t.Fatalf("outcome = %q, want %q", outcome, OutcomeDegradedParse)
	}
	if content != nil {
		t.Errorf("content = %+v, want nil on degraded outcome", content)
	}
}

func TestGenerateModelUnavailable(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	s := NewSynthesizer(provider, time.Second, 0.7, nopLogger{})

	content, outcome := s.Generate(context.Background(), testRequest())

	if outcome != OutcomeDegradedModel {
		t.Fatalf("outcome = %q, want %q", outcome, OutcomeDegradedModel)
	}
	if content != nil {
		t.Errorf("content = %+v, want nil", content)
	}
}

func TestGenerateTimeout(t *testing.T) {
	provider := &fakeProvider{block: true}
	s := NewSynthesizer(provider, 20*time.Millisecond, 0.7, nopLogger{})

	start := time.Now()
	content, outcome := s.Generate(context.Background(), testRequest())

	if outcome != OutcomeDegradedTimeout {
		t.Fatalf("outcome = %q, want %q", outcome, OutcomeDegradedTimeout)
	}
	if content != nil {
		t.Errorf("content = %+v, want nil", content)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout took %v, the bound is not being enforced", elapsed)
	}
}

func TestDegraded(t *testing.T) {
	if OutcomeOK.Degraded() {
		t.Error("OK must not read as degraded")
	}
	for _, o := range []Outcome{OutcomeDegradedTimeout, OutcomeDegradedModel, OutcomeDegradedParse} {
		if !o.Degraded() {
			t.Errorf("%q must read as degraded", o)
		}
	}
}
