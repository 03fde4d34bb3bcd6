package mapper

import (
	"sort"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/model"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(t *model.LessonTemplate) *entity.LessonTemplate {
	if t == nil {
		return nil
	}

	slots := make([]entity.TemplateSlot, len(t.Slots))
	for i, s := range t.Slots {
		slots[i] = entity.TemplateSlot{
			Id:             s.Id,
			PlaceholderKey: s.PlaceholderKey,
			ContentType:    entity.SlotContentType(s.ContentType),
			Position:       s.Position,
			Instruction:    s.Instruction,
		}
	}
	// Slot order is part of the template contract
	sort.Slice(slots, func(i, j int) bool { return slots[i].Position < slots[j].Position })

	return &entity.LessonTemplate{
		Id:        t.Id,
		Category:  t.Category,
		Level:     t.Level,
		Name:      t.Name,
		Slots:     slots,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TemplateMapper) ToModel(t *entity.LessonTemplate) *model.LessonTemplate {
	if t == nil {
		return nil
	}

	slots := make([]model.TemplateSlot, len(t.Slots))
	for i, s := range t.Slots {
		slots[i] = model.TemplateSlot{
			Id:             s.Id,
			TemplateId:     t.Id,
			PlaceholderKey: s.PlaceholderKey,
			ContentType:    string(s.ContentType),
			Position:       s.Position,
			Instruction:    s.Instruction,
		}
	}

	return &model.LessonTemplate{
		Id:        t.Id,
		Category:  t.Category,
		Level:     t.Level,
		Name:      t.Name,
		Slots:     slots,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
