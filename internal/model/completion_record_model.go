package model

import (
	"time"

	"github.com/google/uuid"
)

// CompletionRecord rows are upserted on the composite natural key.
// The unique index is what makes concurrent completions collapse into one
// row; application code must never check-then-insert against this table.
type CompletionRecord struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_completion_student_unit,priority:1"`
	LogicalUnitId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_completion_student_unit,priority:2"`
	Title         string    `gorm:"type:text;not null"`
	SessionId     uuid.UUID `gorm:"type:uuid"`
	CompletedAt   time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (CompletionRecord) TableName() string {
	return "completion_records"
}
