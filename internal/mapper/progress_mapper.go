package mapper

import (
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/model"
)

type ProgressMapper struct{}

func NewProgressMapper() *ProgressMapper {
	return &ProgressMapper{}
}

func (m *ProgressMapper) CompletionToEntity(c *model.CompletionRecord) *entity.CompletionRecord {
	if c == nil {
		return nil
	}
	return &entity.CompletionRecord{
		Id:            c.Id,
		StudentId:     c.StudentId,
		LogicalUnitId: c.LogicalUnitId,
		Title:         c.Title,
		SessionId:     c.SessionId,
		CompletedAt:   c.CompletedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *ProgressMapper) CompletionToModel(c *entity.CompletionRecord) *model.CompletionRecord {
	if c == nil {
		return nil
	}
	return &model.CompletionRecord{
		Id:            c.Id,
		StudentId:     c.StudentId,
		LogicalUnitId: c.LogicalUnitId,
		Title:         c.Title,
		SessionId:     c.SessionId,
		CompletedAt:   c.CompletedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
