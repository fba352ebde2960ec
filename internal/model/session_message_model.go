package model

import (
	"time"

	"github.com/google/uuid"
)

// Seq is a bigserial that breaks ordering ties between messages sharing
// a timestamp. Duplicates are possible under client retry; uniqueness is
// deliberately not enforced.
type SessionMessage struct {
	Seq          int64     `gorm:"primaryKey;autoIncrement"`
	Id           uuid.UUID `gorm:"type:uuid;not null;default:gen_random_uuid()"`
	SessionId    uuid.UUID `gorm:"type:uuid;not null;index:idx_session_messages_session_lo"`
	LoId         int       `gorm:"not null;index:idx_session_messages_session_lo"`
	Role         string    `gorm:"type:text;not null"`
	Text         string    `gorm:"type:text;not null"`
	ActivityType string    `gorm:"type:text;not null;default:'chat'"`
	Timestamp    time.Time `gorm:"not null;index"`
}

func (SessionMessage) TableName() string {
	return "session_messages"
}
