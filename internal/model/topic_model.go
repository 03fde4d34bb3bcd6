package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Topic struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId uuid.UUID      `gorm:"type:uuid;not null;index"` // Student ownership for data isolation
	Name      string         `gorm:"type:text;not null"`
	Category  string         `gorm:"type:text;not null"`
	Level     string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Topic) TableName() string {
	return "topics"
}
