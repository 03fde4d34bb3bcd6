package specification

import "gorm.io/gorm"

// Specification composes query predicates onto a GORM chain
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
