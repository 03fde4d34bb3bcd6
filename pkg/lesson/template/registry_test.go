package template

import (
	"context"
	"errors"
	"testing"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/specification"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeTemplateRepo resolves specifications the way the SQL layer would,
// against an in-memory slice
type fakeTemplateRepo struct {
	templates []*entity.LessonTemplate
	err       error
}

func (f *fakeTemplateRepo) Create(_ context.Context, t *entity.LessonTemplate) error {
	f.templates = append(f.templates, t)
	return nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeTemplateRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.LessonTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.templates {
		if matches(t, specs) {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.LessonTemplate, error) {
	var out []*entity.LessonTemplate
	for _, t := range f.templates {
		if matches(t, specs) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTemplateRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := f.FindAll(context.Background(), specs...)
	return int64(len(all)), nil
}

func matches(t *entity.LessonTemplate, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByCategoryAndLevel:
			if t.Category != spec.Category || t.Level != spec.Level {
				return false
			}
		case specification.ByCategory:
			if t.Category != spec.Category {
				return false
			}
		}
	}
	return true
}

func validTemplate(category, level string) *entity.LessonTemplate {
	return &entity.LessonTemplate{
		Id:       uuid.New(),
		Category: category,
		Level:    level,
		Name:     category + " " + level,
		Slots: []entity.TemplateSlot{
			{PlaceholderKey: "key_vocabulary", ContentType: entity.SlotTypeVocabulary},
		},
	}
}

func TestResolveExactMatch(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []*entity.LessonTemplate{
		validTemplate("travel", "A2"),
		validTemplate("travel", "B1"),
	}}
	registry := NewRegistry(repo, nopLogger{})

	tmpl, match, err := registry.Resolve(context.Background(), "travel", "B1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if match != MatchExact {
		t.Errorf("match = %v, want MatchExact", match)
	}
	if tmpl.Level != "B1" {
		t.Errorf("Level = %q, want B1", tmpl.Level)
	}
}

func TestResolveLevelFallback(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []*entity.LessonTemplate{
		validTemplate("travel", "A2"),
	}}
	registry := NewRegistry(repo, nopLogger{})

	tmpl, match, err := registry.Resolve(context.Background(), "travel", "C1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if match != MatchLevelFallback {
		t.Errorf("match = %v, want MatchLevelFallback", match)
	}
	if tmpl.Level != "A2" {
		t.Errorf("Level = %q, want A2", tmpl.Level)
	}
}

func TestResolveUnknownCategory(t *testing.T) {
	repo := &fakeTemplateRepo{templates: []*entity.LessonTemplate{
		validTemplate("travel", "A2"),
	}}
	registry := NewRegistry(repo, nopLogger{})

	_, _, err := registry.Resolve(context.Background(), "astrophysics", "B1")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("error = %v, want ErrTemplateNotFound", err)
	}
}

func TestResolveRejectsTemplateWithoutSlots(t *testing.T) {
	broken := validTemplate("travel", "B1")
	broken.Slots = nil
	repo := &fakeTemplateRepo{templates: []*entity.LessonTemplate{broken}}
	registry := NewRegistry(repo, nopLogger{})

	_, _, err := registry.Resolve(context.Background(), "travel", "B1")
	if err == nil {
		t.Fatal("expected error for template without slots")
	}
}

func TestResolveRejectsDuplicatePlaceholderKeys(t *testing.T) {
	broken := validTemplate("travel", "B1")
	broken.Slots = append(broken.Slots, broken.Slots[0])
	repo := &fakeTemplateRepo{templates: []*entity.LessonTemplate{broken}}
	registry := NewRegistry(repo, nopLogger{})

	_, _, err := registry.Resolve(context.Background(), "travel", "B1")
	if err == nil {
		t.Fatal("expected error for duplicate placeholder keys")
	}
}

func TestResolvePropagatesRepositoryError(t *testing.T) {
	repo := &fakeTemplateRepo{err: errors.New("connection refused")}
	registry := NewRegistry(repo, nopLogger{})

	_, _, err := registry.Resolve(context.Background(), "travel", "B1")
	if err == nil {
		t.Fatal("expected repository error to propagate")
	}
	if errors.Is(err, ErrTemplateNotFound) {
		t.Error("infrastructure error must not masquerade as not-found")
	}
}
