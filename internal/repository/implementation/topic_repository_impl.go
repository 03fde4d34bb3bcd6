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

type TopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewTopicRepository(db *gorm.DB) contract.TopicRepository {
	return &TopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *TopicRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TopicRepositoryImpl) Create(ctx context.Context, topic *entity.Topic) error {
	m := r.mapper.TopicToModel(topic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.TopicToEntity(m)
	return nil
}

func (r *TopicRepositoryImpl) Update(ctx context.Context, topic *entity.Topic) error {
	m := r.mapper.TopicToModel(topic)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.TopicToEntity(m)
	return nil
}

func (r *TopicRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Topic{}, id).Error
}

func (r *TopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error) {
	var m model.Topic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TopicToEntity(&m), nil
}

func (r *TopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error) {
	var models []*model.Topic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Topic, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TopicToEntity(m)
	}
	return entities, nil
}

func (r *TopicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Topic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
