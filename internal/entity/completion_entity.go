package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CompletionRecord marks a student having finished one logical unit of
// content. At most one record exists per (StudentId, LogicalUnitId);
// regeneration of the same unit updates the record in place.
type CompletionRecord struct {
	Id            uuid.UUID
	StudentId     uuid.UUID
	LogicalUnitId uuid.UUID
	Title         string // Snapshot of the unit title at completion time
	SessionId     uuid.UUID
	CompletedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Namespace for deterministic logical unit ids. Fixed forever: changing it
// would orphan every existing completion record.
var logicalUnitNamespace = uuid.MustParse("8f6f3a52-0d41-4f2e-9c37-5b1a6d9e44c0")

// LogicalUnitID derives the stable identity of a sub-topic from its lesson,
// category and slugged title. Timestamps and regeneration counters must never
// feed into this id: a regenerated unit has to map onto the completion
// record written for the original one.
func LogicalUnitID(category string, lessonId uuid.UUID, subTopicTitle string) uuid.UUID {
	name := strings.ToLower(category) + "|" + lessonId.String() + "|" + slugify(subTopicTitle)
	return uuid.NewSHA1(logicalUnitNamespace, []byte(name))
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
