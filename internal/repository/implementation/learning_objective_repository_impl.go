package implementation

import (
	"context"
	"errors"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/mapper"
	"ai-tutoring-be/internal/model"
	"ai-tutoring-be/internal/repository/contract"
	"ai-tutoring-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LearningObjectiveRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorMapper
}

func NewLearningObjectiveRepository(db *gorm.DB) contract.LearningObjectiveRepository {
	return &LearningObjectiveRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorMapper(),
	}
}

func (r *LearningObjectiveRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LearningObjectiveRepositoryImpl) FindByID(ctx context.Context, loId int) (*entity.LearningObjective, error) {
	var m model.LearningObjective
	if err := r.db.WithContext(ctx).Where("id = ?", loId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ObjectiveToEntity(&m), nil
}

func (r *LearningObjectiveRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningObjective, error) {
	var models []*model.LearningObjective
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LearningObjective, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ObjectiveToEntity(m)
	}
	return entities, nil
}
