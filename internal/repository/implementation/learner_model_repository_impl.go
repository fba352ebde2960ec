package implementation

import (
	"context"
	"errors"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/mapper"
	"ai-tutoring-be/internal/model"
	"ai-tutoring-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearnerModelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorMapper
}

func NewLearnerModelRepository(db *gorm.DB) contract.LearnerModelRepository {
	return &LearnerModelRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorMapper(),
	}
}

func (r *LearnerModelRepositoryImpl) Get(ctx context.Context, userId uuid.UUID, loId int) (*entity.LearnerModel, error) {
	var m model.LearnerModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND lo_id = ?", userId, loId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LearnerModelToEntity(&m), nil
}

func (r *LearnerModelRepositoryImpl) Upsert(ctx context.Context, record *entity.LearnerModel) error {
	m := r.mapper.LearnerModelToModel(record)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lo_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"proficiency", "feedback", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*record = *r.mapper.LearnerModelToEntity(m)
	return nil
}

func (r *LearnerModelRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.LearnerModel, error) {
	var models []*model.LearnerModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("lo_id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.LearnerModel, len(models))
	for i, m := range models {
		entities[i] = r.mapper.LearnerModelToEntity(m)
	}
	return entities, nil
}
