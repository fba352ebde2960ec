package dto

import (
	"github.com/google/uuid"
)

type AssessmentQuestionRequest struct {
	LoId int `json:"lo_id" validate:"required"`
}

type AssessmentQuestionResponse struct {
	Question string `json:"question"`
}

type EvaluationRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	LoId      int       `json:"lo_id" validate:"required"`
	Question  string    `json:"question" validate:"required"`
	UserInput string    `json:"user_input" validate:"required"`
}

type EvaluationResponse struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
	Followup string `json:"followup"`
}
