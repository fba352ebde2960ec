package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per (user, objective). The composite unique index backs the
// upsert's ON CONFLICT clause.
type LearnerModel struct {
	UserId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_learner_models_user_lo"`
	LoId        int       `gorm:"not null;uniqueIndex:idx_learner_models_user_lo"`
	Proficiency float64   `gorm:"not null;default:0"`
	Feedback    *string   `gorm:"type:text"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (LearnerModel) TableName() string {
	return "learner_models"
}
