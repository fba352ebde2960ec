package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionMessage is one append-only transcript line keyed by
// (session, objective). Seq is assigned by storage and breaks
// timestamp ties.
type SessionMessage struct {
	Seq          int64
	Id           uuid.UUID
	SessionId    uuid.UUID
	LoId         int
	Role         string
	Text         string
	ActivityType string
	Timestamp    time.Time
}
