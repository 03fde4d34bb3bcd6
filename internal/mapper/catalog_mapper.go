package mapper

import (
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) TopicToEntity(t *model.Topic) *entity.Topic {
	if t == nil {
		return nil
	}
	return &entity.Topic{
		Id:        t.Id,
		StudentId: t.StudentId,
		Name:      t.Name,
		Category:  t.Category,
		Level:     t.Level,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *CatalogMapper) TopicToModel(t *entity.Topic) *model.Topic {
	if t == nil {
		return nil
	}
	return &model.Topic{
		Id:        t.Id,
		StudentId: t.StudentId,
		Name:      t.Name,
		Category:  t.Category,
		Level:     t.Level,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *CatalogMapper) QuestionToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:        q.Id,
		TopicId:   q.TopicId,
		Prompt:    q.Prompt,
		Answer:    q.Answer,
		Position:  q.Position,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func (m *CatalogMapper) QuestionToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:        q.Id,
		TopicId:   q.TopicId,
		Prompt:    q.Prompt,
		Answer:    q.Answer,
		Position:  q.Position,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
