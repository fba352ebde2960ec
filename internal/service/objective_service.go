package service

import (
	"context"

	"ai-tutoring-be/internal/apperror"
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/memory"
	"ai-tutoring-be/internal/repository/specification"
	"ai-tutoring-be/internal/repository/unitofwork"
)

type IObjectiveService interface {
	ListObjectives(ctx context.Context) ([]*dto.ObjectiveResponse, error)
	GetObjective(ctx context.Context, loId int) (*dto.ObjectiveResponse, error)
}

type objectiveService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.CatalogCache
}

func NewObjectiveService(uowFactory unitofwork.RepositoryFactory, cache *memory.CatalogCache) IObjectiveService {
	return &objectiveService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// loadCatalog returns the full catalog ordered by id, going to storage
// only on a cache miss. The catalog is immutable at runtime so the
// cached copy is shared freely between services.
func loadCatalog(ctx context.Context, uow unitofwork.UnitOfWork, cache *memory.CatalogCache) ([]*entity.LearningObjective, error) {
	if objectives, found := cache.GetCatalog(); found {
		return objectives, nil
	}

	objectives, err := uow.LearningObjectiveRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	cache.SaveCatalog(objectives)
	return objectives, nil
}

func (s *objectiveService) ListObjectives(ctx context.Context) ([]*dto.ObjectiveResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	objectives, err := loadCatalog(ctx, uow, s.cache)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ObjectiveResponse, 0, len(objectives))
	for _, obj := range objectives {
		responses = append(responses, &dto.ObjectiveResponse{
			Id:        obj.Id,
			Topic:     obj.Topic,
			Objective: obj.Objective,
		})
	}
	return responses, nil
}

func (s *objectiveService) GetObjective(ctx context.Context, loId int) (*dto.ObjectiveResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	objective, err := uow.LearningObjectiveRepository().FindByID(ctx, loId)
	if err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, apperror.NotFound("learning objective")
	}

	return &dto.ObjectiveResponse{
		Id:        objective.Id,
		Topic:     objective.Topic,
		Objective: objective.Objective,
	}, nil
}
