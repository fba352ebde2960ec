package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
	Mode   string    `json:"mode" validate:"required,oneof=tutor browse"`
	LoId   *int      `json:"lo_id,omitempty"`
}

type StartSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	LoId      *int      `json:"lo_id"`
}

type GetSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Mode      string    `json:"mode"`
	Status    string    `json:"status"`
	LoId      *int      `json:"lo_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PostMessageRequest struct {
	LoId         int    `json:"lo_id" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=user tutor system"`
	Text         string `json:"text" validate:"required"`
	ActivityType string `json:"activity_type,omitempty"`
}

type MessageResponse struct {
	Id           uuid.UUID `json:"id"`
	SessionId    uuid.UUID `json:"session_id"`
	LoId         int       `json:"lo_id"`
	Role         string    `json:"role"`
	Text         string    `json:"text"`
	ActivityType string    `json:"activity_type"`
	Timestamp    time.Time `json:"timestamp"`
}

type NextObjectiveResponse struct {
	NextLoId *int `json:"next_lo_id"`
}
