package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStudentID scopes rows to one student
type ByStudentID struct {
	StudentID uuid.UUID
}

func (s ByStudentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id = ?", s.StudentID)
}

// ByTopicID scopes questions to one topic
type ByTopicID struct {
	TopicID uuid.UUID
}

func (s ByTopicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_id = ?", s.TopicID)
}

// ByCategory filters templates by content category
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByCategoryAndLevel is the exact template match
type ByCategoryAndLevel struct {
	Category string
	Level    string
}

func (s ByCategoryAndLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ? AND level = ?", s.Category, s.Level)
}

// ByLogicalUnit matches a completion record's natural key
type ByLogicalUnit struct {
	StudentID     uuid.UUID
	LogicalUnitID uuid.UUID
}

func (s ByLogicalUnit) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id = ? AND logical_unit_id = ?", s.StudentID, s.LogicalUnitID)
}
