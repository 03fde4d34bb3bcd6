package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarkCompletedRequest struct {
	StudentId     uuid.UUID `json:"student_id" validate:"required"`
	LogicalUnitId uuid.UUID `json:"logical_unit_id" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	SessionId     uuid.UUID `json:"session_id"`
}

type MarkCompletedResponse struct {
	LogicalUnitId uuid.UUID `json:"logical_unit_id"`
	CompletedAt   time.Time `json:"completed_at"`
}

// CompletionRecordedMessage is published in-process after a successful
// upsert so cached progress views refresh immediately
type CompletionRecordedMessage struct {
	StudentId     uuid.UUID `json:"student_id"`
	LogicalUnitId uuid.UUID `json:"logical_unit_id"`
	Title         string    `json:"title"`
}

type CompletionStatusResponse struct {
	LogicalUnitId uuid.UUID  `json:"logical_unit_id"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}
