package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_sessions_user_mode_status"`
	Mode      string    `gorm:"type:text;not null;index:idx_sessions_user_mode_status"`
	Status    string    `gorm:"type:text;not null;index:idx_sessions_user_mode_status"`
	LoId      *int      `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Session) TableName() string {
	return "sessions"
}
