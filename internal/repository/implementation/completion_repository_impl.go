package implementation

import (
	"context"
	"errors"
	"time"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/mapper"
	"ai-tutoring-be/internal/model"
	"ai-tutoring-be/internal/repository/contract"
	"ai-tutoring-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewCompletionRepository(db *gorm.DB) contract.CompletionRepository {
	return &CompletionRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *CompletionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert writes a completion record through INSERT ... ON CONFLICT so the
// unique index on (student_id, logical_unit_id) arbitrates concurrent
// completions. The snapshot columns are refreshed on conflict; the row count
// stays at one per natural key no matter how often a unit is regenerated.
func (r *CompletionRepositoryImpl) Upsert(ctx context.Context, record *entity.CompletionRecord) error {
	m := r.mapper.CompletionToModel(record)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if m.CompletedAt.IsZero() {
		m.CompletedAt = time.Now()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "logical_unit_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "session_id", "completed_at", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	*record = *r.mapper.CompletionToEntity(m)
	return nil
}

func (r *CompletionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompletionRecord, error) {
	var m model.CompletionRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CompletionToEntity(&m), nil
}

func (r *CompletionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompletionRecord, error) {
	var models []*model.CompletionRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CompletionRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CompletionToEntity(m)
	}
	return entities, nil
}

func (r *CompletionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CompletionRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
