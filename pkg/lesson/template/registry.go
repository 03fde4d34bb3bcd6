package template

import (
	"context"
	"errors"
	"fmt"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/contract"
	"ai-tutoring-be/internal/repository/specification"
)

// ErrTemplateNotFound means no template exists for the category at all.
// Callers must treat this as fatal for the request - generating against an
// empty structural contract would produce unusable material.
var ErrTemplateNotFound = errors.New("no lesson template for category")

// Match reports how a template was resolved
type Match int

const (
	MatchExact Match = iota
	// MatchLevelFallback means only a category match existed; the caller
	// proceeds with a best-effort level.
	MatchLevelFallback
)

// Registry resolves lesson templates by (category, level)
type Registry struct {
	templateRepo contract.TemplateRepository
	logger       logger.ILogger
}

func NewRegistry(templateRepo contract.TemplateRepository, log logger.ILogger) *Registry {
	return &Registry{
		templateRepo: templateRepo,
		logger:       log,
	}
}

// Resolve prefers the exact (category, level) template and falls back to a
// category-only match, surfacing the fallback as a warning signal rather
// than an error.
func (r *Registry) Resolve(ctx context.Context, category, level string) (*entity.LessonTemplate, Match, error) {
	tmpl, err := r.templateRepo.FindOne(ctx, specification.ByCategoryAndLevel{Category: category, Level: level})
	if err != nil {
		return nil, MatchExact, fmt.Errorf("resolve template: %w", err)
	}
	if tmpl != nil {
		if err := validate(tmpl); err != nil {
			return nil, MatchExact, err
		}
		return tmpl, MatchExact, nil
	}

	tmpl, err = r.templateRepo.FindOne(ctx,
		specification.ByCategory{Category: category},
		specification.OrderBy{Field: "level"},
	)
	if err != nil {
		return nil, MatchExact, fmt.Errorf("resolve template: %w", err)
	}
	if tmpl == nil {
		return nil, MatchExact, fmt.Errorf("%w: %s", ErrTemplateNotFound, category)
	}

	if err := validate(tmpl); err != nil {
		return nil, MatchLevelFallback, err
	}

	r.logger.Warn("TEMPLATE_REGISTRY", "No template for requested level, using category fallback", map[string]interface{}{
		"category":        category,
		"requested_level": level,
		"fallback_level":  tmpl.Level,
	})
	return tmpl, MatchLevelFallback, nil
}

// validate enforces the template contract: at least one slot, and placeholder
// keys unique within the template.
func validate(tmpl *entity.LessonTemplate) error {
	if len(tmpl.Slots) == 0 {
		return fmt.Errorf("template %s has no slots", tmpl.Id)
	}
	seen := make(map[string]struct{}, len(tmpl.Slots))
	for _, slot := range tmpl.Slots {
		if slot.PlaceholderKey == "" {
			return fmt.Errorf("template %s has a slot without placeholder key", tmpl.Id)
		}
		if _, dup := seen[slot.PlaceholderKey]; dup {
			return fmt.Errorf("template %s has duplicate placeholder key %q", tmpl.Id, slot.PlaceholderKey)
		}
		seen[slot.PlaceholderKey] = struct{}{}
	}
	return nil
}
