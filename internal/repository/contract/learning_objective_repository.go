package contract

import (
	"context"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/specification"
)

// LearningObjectiveRepository reads the immutable catalog. Writes happen
// only through the seed command.
type LearningObjectiveRepository interface {
	FindByID(ctx context.Context, loId int) (*entity.LearningObjective, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningObjective, error)
}
