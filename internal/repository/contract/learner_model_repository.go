package contract

import (
	"context"

	"ai-tutoring-be/internal/entity"

	"github.com/google/uuid"
)

type LearnerModelRepository interface {
	// Get returns nil when no record exists; callers treat that as
	// proficiency 0.
	Get(ctx context.Context, userId uuid.UUID, loId int) (*entity.LearnerModel, error)
	// Upsert overwrites on (user_id, lo_id) conflict, last-writer-wins.
	Upsert(ctx context.Context, record *entity.LearnerModel) error
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.LearnerModel, error)
}
