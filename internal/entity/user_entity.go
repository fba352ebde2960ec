package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash *string
	SkillLevel   int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
