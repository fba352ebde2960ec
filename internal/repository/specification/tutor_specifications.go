package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByMode struct {
	Mode string
}

func (s ByMode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mode = ?", s.Mode)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByObjectiveID struct {
	LoID int
}

func (s ByObjectiveID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("lo_id = ?", s.LoID)
}

// ObjectiveIDAfter selects catalog rows strictly past a progression point.
type ObjectiveIDAfter struct {
	LoID int
}

func (s ObjectiveIDAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id > ?", s.LoID)
}

type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}
