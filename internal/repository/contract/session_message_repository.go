package contract

import (
	"context"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/specification"
)

// SessionMessageRepository is append-only; there is no update or delete.
type SessionMessageRepository interface {
	Create(ctx context.Context, message *entity.SessionMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionMessage, error)
}
