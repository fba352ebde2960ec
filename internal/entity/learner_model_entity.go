package entity

import (
	"time"

	"github.com/google/uuid"
)

// LearnerModel is the per-(user, objective) mastery record.
// Proficiency lives in [0, 1]; exactly 1 means mastered.
type LearnerModel struct {
	UserId      uuid.UUID
	LoId        int
	Proficiency float64
	Feedback    *string
	UpdatedAt   time.Time
}
