package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bounded interaction context between a user and the
// tutoring flow. Mode is "tutor" (guided, sequential) or "browse"
// (user-directed). LoId is nil for a tutor session started after every
// objective has been mastered.
type Session struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Mode      string
	Status    string
	LoId      *int
	CreatedAt time.Time
}
