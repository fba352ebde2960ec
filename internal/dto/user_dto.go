package dto

import (
	"github.com/google/uuid"
)

type UpsertUserRequest struct {
	Id         uuid.UUID `json:"id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	SkillLevel int       `json:"skill_level" validate:"min=0"`
}

type UserProfileResponse struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	SkillLevel int       `json:"skill_level"`
}

type UpdateProficiencyRequest struct {
	Proficiency float64 `json:"proficiency" validate:"min=0,max=1"`
	Feedback    *string `json:"feedback,omitempty"`
}

// ProficiencySummaryItem covers every catalog objective; objectives
// without a learner record are synthesized with score 0.
type ProficiencySummaryItem struct {
	LoId      int     `json:"lo_id"`
	Topic     string  `json:"topic"`
	Objective string  `json:"objective"`
	Score     float64 `json:"score"`
	Feedback  string  `json:"feedback"`
	Status    string  `json:"status"`
}
