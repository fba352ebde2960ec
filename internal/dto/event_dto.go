package dto

import (
	"github.com/google/uuid"
)

// MasteryAchievedMessage is the payload published on the internal
// mastery topic when an evaluation marks an objective as mastered.
type MasteryAchievedMessage struct {
	UserId uuid.UUID `json:"user_id"`
	LoId   int       `json:"lo_id"`
}
