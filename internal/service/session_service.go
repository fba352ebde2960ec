package service

import (
	"context"
	"hash/fnv"
	"sync"
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

type ISessionService interface {
	StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	GetSession(ctx context.Context, requesterId, sessionId uuid.UUID) (*dto.GetSessionResponse, error)
	NextUnmasteredObjective(ctx context.Context, userId uuid.UUID, currentLoId int) (*dto.NextObjectiveResponse, error)
	AppendMessage(ctx context.Context, requesterId, sessionId uuid.UUID, req *dto.PostMessageRequest) (*dto.MessageResponse, error)
	ListMessages(ctx context.Context, requesterId, sessionId uuid.UUID, loId *int) ([]*dto.MessageResponse, error)
}

// startLockStripes bounds the lock table: a per-user map would grow by
// one mutex for every user ever seen. Colliding users merely serialize
// against each other.
const startLockStripes = 64

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.CatalogCache

	// startLocks serializes start-session per user so two concurrent
	// calls cannot both pass the lookup and insert a second active
	// tutor session. Striped by user id hash.
	startLocks [startLockStripes]sync.Mutex
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, cache *memory.CatalogCache) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *sessionService) lockUser(userId uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(userId[:])
	lock := &s.startLocks[h.Sum32()%startLockStripes]
	lock.Lock()
	return lock
}

// StartSession creates or resumes a session.
//
// Tutor mode resumes the most recent active tutor session unconditionally;
// otherwise it binds the new session to the lowest unmastered objective
// (nil when the whole catalog is mastered). Browse mode reuses the most
// recent browse session for an objective only when that objective is
// already mastered; an unmastered objective always gets a fresh session.
// A supplied objective id must exist in the catalog regardless of mode.
func (s *sessionService) StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	lock := s.lockUser(req.UserId)
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	loId := req.LoId
	if loId != nil {
		objective, err := uow.LearningObjectiveRepository().FindByID(ctx, *loId)
		if err != nil {
			return nil, err
		}
		if objective == nil {
			return nil, apperror.NotFound("learning objective")
		}
	}

	switch req.Mode {
	case constant.SessionModeTutor:
		existing, err := uow.SessionRepository().FindOne(ctx,
			specification.OwnedBy{UserID: req.UserId},
			specification.ByMode{Mode: constant.SessionModeTutor},
			specification.ByStatus{Status: constant.SessionStatusActive},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &dto.StartSessionResponse{SessionId: existing.Id, LoId: existing.LoId}, nil
		}

		if loId == nil {
			loId, err = s.lowestUnmastered(ctx, uow, req.UserId)
			if err != nil {
				return nil, err
			}
		}

	case constant.SessionModeBrowse:
		if loId != nil {
			record, err := uow.LearnerModelRepository().Get(ctx, req.UserId, *loId)
			if err != nil {
				return nil, err
			}
			if record != nil && record.Proficiency >= constant.ProficiencyMastered {
				existing, err := uow.SessionRepository().FindOne(ctx,
					specification.OwnedBy{UserID: req.UserId},
					specification.ByMode{Mode: constant.SessionModeBrowse},
					specification.ByObjectiveID{LoID: *loId},
					specification.OrderBy{Field: "created_at", Desc: true},
				)
				if err != nil {
					return nil, err
				}
				if existing != nil {
					return &dto.StartSessionResponse{SessionId: existing.Id, LoId: existing.LoId}, nil
				}
			}
		}

	default:
		return nil, apperror.InvalidInput("unknown session mode")
	}

	session := &entity.Session{
		Id:        uuid.New(),
		UserId:    req.UserId,
		Mode:      req.Mode,
		Status:    constant.SessionStatusActive,
		LoId:      loId,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.StartSessionResponse{SessionId: session.Id, LoId: session.LoId}, nil
}

func (s *sessionService) GetSession(ctx context.Context, requesterId, sessionId uuid.UUID) (*dto.GetSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := findOwnedSession(ctx, uow, requesterId, sessionId)
	if err != nil {
		return nil, err
	}

	return &dto.GetSessionResponse{
		SessionId: session.Id,
		Mode:      session.Mode,
		Status:    session.Status,
		LoId:      session.LoId,
		CreatedAt: session.CreatedAt,
	}, nil
}

// NextUnmasteredObjective scans the catalog strictly past currentLoId in
// id order and returns the first objective the user has not mastered,
// or nil when the catalog is exhausted.
func (s *sessionService) NextUnmasteredObjective(ctx context.Context, userId uuid.UUID, currentLoId int) (*dto.NextObjectiveResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	objectives, err := uow.LearningObjectiveRepository().FindAll(ctx,
		specification.ObjectiveIDAfter{LoID: currentLoId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	proficiency, err := s.proficiencyByObjective(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	for _, obj := range objectives {
		if proficiency[obj.Id] < constant.ProficiencyMastered {
			loId := obj.Id
			return &dto.NextObjectiveResponse{NextLoId: &loId}, nil
		}
	}
	return &dto.NextObjectiveResponse{NextLoId: nil}, nil
}

func (s *sessionService) AppendMessage(ctx context.Context, requesterId, sessionId uuid.UUID, req *dto.PostMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedSession(ctx, uow, requesterId, sessionId); err != nil {
		return nil, err
	}

	activityType := req.ActivityType
	if activityType == "" {
		activityType = constant.ActivityTypeChat
	}

	message := &entity.SessionMessage{
		Id:           uuid.New(),
		SessionId:    sessionId,
		LoId:         req.LoId,
		Role:         req.Role,
		Text:         req.Text,
		ActivityType: activityType,
		Timestamp:    time.Now(),
	}

	if err := uow.SessionMessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	return messageResponse(message), nil
}

func (s *sessionService) ListMessages(ctx context.Context, requesterId, sessionId uuid.UUID, loId *int) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedSession(ctx, uow, requesterId, sessionId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.BySessionID{SessionID: sessionId},
	}
	if loId != nil {
		specs = append(specs, specification.ByObjectiveID{LoID: *loId})
	}
	// seq breaks timestamp ties so transcripts replay deterministically
	specs = append(specs,
		specification.OrderBy{Field: "timestamp"},
		specification.OrderBy{Field: "seq"},
	)

	messages, err := uow.SessionMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, messageResponse(m))
	}
	return responses, nil
}

func findOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, requesterId, sessionId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("session")
	}
	if session.UserId != requesterId {
		return nil, apperror.NotAuthorized("session belongs to another user")
	}
	return session, nil
}

func (s *sessionService) proficiencyByObjective(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (map[int]float64, error) {
	records, err := uow.LearnerModelRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	proficiency := make(map[int]float64, len(records))
	for _, r := range records {
		proficiency[r.LoId] = r.Proficiency
	}
	return proficiency, nil
}

func (s *sessionService) lowestUnmastered(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*int, error) {
	objectives, err := loadCatalog(ctx, uow, s.cache)
	if err != nil {
		return nil, err
	}

	proficiency, err := s.proficiencyByObjective(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	for _, obj := range objectives {
		if proficiency[obj.Id] < constant.ProficiencyMastered {
			loId := obj.Id
			return &loId, nil
		}
	}
	return nil, nil
}

func messageResponse(m *entity.SessionMessage) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:           m.Id,
		SessionId:    m.SessionId,
		LoId:         m.LoId,
		Role:         m.Role,
		Text:         m.Text,
		ActivityType: m.ActivityType,
		Timestamp:    m.Timestamp,
	}
}
