package entity

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a student's study topic; its questions are the expensive lookup
// the read-through cache shields.
type Topic struct {
	Id        uuid.UUID
	StudentId uuid.UUID
	Name      string
	Category  string
	Level     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Question is one practice question attached to a topic
type Question struct {
	Id        uuid.UUID
	TopicId   uuid.UUID
	Prompt    string
	Answer    string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
