package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonTemplate struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Category  string         `gorm:"type:text;not null;index:idx_template_category_level,priority:1"`
	Level     string         `gorm:"type:text;not null;index:idx_template_category_level,priority:2"`
	Name      string         `gorm:"type:text;not null"`
	Slots     []TemplateSlot `gorm:"foreignKey:TemplateId;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LessonTemplate) TableName() string {
	return "lesson_templates"
}

type TemplateSlot struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TemplateId     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_template_placeholder,priority:1"`
	PlaceholderKey string    `gorm:"type:text;not null;uniqueIndex:ux_template_placeholder,priority:2"`
	ContentType    string    `gorm:"type:text;not null"`
	Position       int       `gorm:"not null"`
	Instruction    string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (TemplateSlot) TableName() string {
	return "template_slots"
}
