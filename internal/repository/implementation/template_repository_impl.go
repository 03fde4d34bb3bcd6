package implementation

import (
	"context"
	"errors"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/mapper"
	"ai-tutoring-be/internal/model"
	"ai-tutoring-be/internal/repository/contract"
	"ai-tutoring-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TemplateMapper
}

func NewTemplateRepository(db *gorm.DB) contract.TemplateRepository {
	return &TemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewTemplateMapper(),
	}
}

func (r *TemplateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, template *entity.LessonTemplate) error {
	m := r.mapper.ToModel(template)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ToEntity(m)
	return nil
}

func (r *TemplateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LessonTemplate{}, id).Error
}

func (r *TemplateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LessonTemplate, error) {
	var m model.LessonTemplate
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Slots"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TemplateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LessonTemplate, error) {
	var models []*model.LessonTemplate
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Slots"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LessonTemplate, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TemplateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LessonTemplate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
