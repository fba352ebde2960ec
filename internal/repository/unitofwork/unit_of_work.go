package unitofwork

import (
	"context"

	"ai-tutoring-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SessionRepository() contract.SessionRepository
	SessionMessageRepository() contract.SessionMessageRepository
	LearningObjectiveRepository() contract.LearningObjectiveRepository
	LearnerModelRepository() contract.LearnerModelRepository
}
