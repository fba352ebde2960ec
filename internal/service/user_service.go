package service

import (
	"context"
	"time"

	"ai-tutoring-be/internal/apperror"
	"ai-tutoring-be/internal/constant"
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/memory"
	"ai-tutoring-be/internal/repository/specification"
	"ai-tutoring-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpsertUser(ctx context.Context, req *dto.UpsertUserRequest) (*dto.UserProfileResponse, error)
	UpdateProficiency(ctx context.Context, userId uuid.UUID, loId int, req *dto.UpdateProficiencyRequest) error
	ProficiencySummary(ctx context.Context, userId uuid.UUID) ([]*dto.ProficiencySummaryItem, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.CatalogCache
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, cache *memory.CatalogCache) IUserService {
	return &userService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	return &dto.UserProfileResponse{
		Id:         user.Id,
		Name:       user.Name,
		Email:      user.Email,
		SkillLevel: user.SkillLevel,
	}, nil
}

// UpsertUser syncs a user record by id, creating it when absent. This is
// the write path for externally managed identities.
func (s *userService) UpsertUser(ctx context.Context, req *dto.UpsertUserRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	user := &entity.User{
		Id:         req.Id,
		Name:       req.Name,
		Email:      req.Email,
		SkillLevel: req.SkillLevel,
		CreatedAt:  now,
		UpdatedAt:  &now,
	}

	if err := uow.UserRepository().Upsert(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserProfileResponse{
		Id:         user.Id,
		Name:       user.Name,
		Email:      user.Email,
		SkillLevel: user.SkillLevel,
	}, nil
}

// UpdateProficiency is the manual write path used by instructors and
// backfills. The assessment flow writes through the evaluation service.
func (s *userService) UpdateProficiency(ctx context.Context, userId uuid.UUID, loId int, req *dto.UpdateProficiencyRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	objective, err := uow.LearningObjectiveRepository().FindByID(ctx, loId)
	if err != nil {
		return err
	}
	if objective == nil {
		return apperror.NotFound("learning objective")
	}

	record := &entity.LearnerModel{
		UserId:      userId,
		LoId:        loId,
		Proficiency: req.Proficiency,
		Feedback:    req.Feedback,
		UpdatedAt:   time.Now(),
	}
	if err := uow.LearnerModelRepository().Upsert(ctx, record); err != nil {
		return err
	}

	s.cache.InvalidateSummary(userId.String())
	return nil
}

// ProficiencySummary reports every catalog objective with the learner's
// score and a derived status label. Objectives without a record are
// reported with score 0 rather than omitted.
func (s *userService) ProficiencySummary(ctx context.Context, userId uuid.UUID) ([]*dto.ProficiencySummaryItem, error) {
	if cached, found := s.cache.GetSummary(userId.String()); found {
		if summary, ok := cached.([]*dto.ProficiencySummaryItem); ok {
			return summary, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	objectives, err := loadCatalog(ctx, uow, s.cache)
	if err != nil {
		return nil, err
	}

	records, err := uow.LearnerModelRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	byLoId := make(map[int]*entity.LearnerModel, len(records))
	for _, r := range records {
		byLoId[r.LoId] = r
	}

	summary := make([]*dto.ProficiencySummaryItem, 0, len(objectives))
	for _, obj := range objectives {
		item := &dto.ProficiencySummaryItem{
			LoId:      obj.Id,
			Topic:     obj.Topic,
			Objective: obj.Objective,
			Status:    constant.ProficiencyLabelNotStarted,
		}
		if record, ok := byLoId[obj.Id]; ok {
			item.Score = record.Proficiency
			if record.Feedback != nil {
				item.Feedback = *record.Feedback
			}
			item.Status = proficiencyLabel(record.Proficiency)
		}
		summary = append(summary, item)
	}

	s.cache.SaveSummary(userId.String(), summary)
	return summary, nil
}

func proficiencyLabel(score float64) string {
	switch {
	case score >= constant.ProficiencyMastered:
		return constant.ProficiencyLabelMastered
	case score > 0:
		return constant.ProficiencyLabelInProgress
	default:
		return constant.ProficiencyLabelNotStarted
	}
}
