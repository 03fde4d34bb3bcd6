package contract

import (
	"context"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/specification"
)

// CompletionRepository persists completion records with upsert semantics on
// (student_id, logical_unit_id). Implementations must make Upsert atomic with
// respect to that key - two concurrent upserts for the same unit may never
// leave two rows behind.
type CompletionRepository interface {
	Upsert(ctx context.Context, record *entity.CompletionRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompletionRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompletionRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
