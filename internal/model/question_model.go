package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TopicId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Prompt    string         `gorm:"type:text;not null"`
	Answer    string         `gorm:"type:text"`
	Position  int            `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Question) TableName() string {
	return "questions"
}
