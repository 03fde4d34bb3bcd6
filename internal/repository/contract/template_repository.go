package contract

import (
	"context"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.LessonTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LessonTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LessonTemplate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
