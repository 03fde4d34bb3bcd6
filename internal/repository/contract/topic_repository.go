package contract

import (
	"context"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TopicRepository interface {
	Create(ctx context.Context, topic *entity.Topic) error
	Update(ctx context.Context, topic *entity.Topic) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	CreateBatch(ctx context.Context, questions []*entity.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
