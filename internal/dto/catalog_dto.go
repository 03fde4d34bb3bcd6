package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTopicRequest struct {
	StudentId uuid.UUID `json:"student_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Category  string    `json:"category" validate:"required"`
	Level     string    `json:"level" validate:"required"`
}

type CreateTopicResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetTopicResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateQuestionRequest struct {
	TopicId uuid.UUID `json:"topic_id" validate:"required"`
	Prompt  string    `json:"prompt" validate:"required"`
	Answer  string    `json:"answer"`
}

type CreateQuestionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetQuestionResponse struct {
	Id       uuid.UUID `json:"id"`
	Prompt   string    `json:"prompt"`
	Answer   string    `json:"answer"`
	Position int       `json:"position"`
}

// QuestionsChangedMessage is the watermill payload that triggers cache
// invalidation for a topic's question namespace
type QuestionsChangedMessage struct {
	TopicId uuid.UUID `json:"topic_id"`
}

// TopicsChangedMessage invalidates a student's topic namespace
type TopicsChangedMessage struct {
	StudentId uuid.UUID `json:"student_id"`
}
