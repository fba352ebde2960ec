package service

import (
	"context"
	"sort"

	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/contract"
	"ai-tutoring-be/internal/repository/specification"
	"ai-tutoring-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// The fakes interpret the specification structs directly instead of
// building SQL, so service logic runs against plain slices and maps.

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUnitOfWork struct {
	users      *fakeUserRepository
	sessions   *fakeSessionRepository
	messages   *fakeMessageRepository
	objectives *fakeObjectiveRepository
	learner    *fakeLearnerModelRepository
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:      &fakeUserRepository{},
		sessions:   &fakeSessionRepository{},
		messages:   &fakeMessageRepository{},
		objectives: &fakeObjectiveRepository{},
		learner:    &fakeLearnerModelRepository{records: make(map[learnerKey]entity.LearnerModel)},
	}
}

func newFakeFactory() (*fakeFactory, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	return &fakeFactory{uow: uow}, uow
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository               { return u.users }
func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository         { return u.sessions }
func (u *fakeUnitOfWork) SessionMessageRepository() contract.SessionMessageRepository {
	return u.messages
}
func (u *fakeUnitOfWork) LearningObjectiveRepository() contract.LearningObjectiveRepository {
	return u.objectives
}
func (u *fakeUnitOfWork) LearnerModelRepository() contract.LearnerModelRepository {
	return u.learner
}

// --- users ---

type fakeUserRepository struct {
	users   []entity.User
	findErr error
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	for i := range r.users {
		if r.users[i].Id == user.Id {
			r.users[i] = *user
			return nil
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.users {
		if userMatches(&r.users[i], specs) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

// --- sessions ---

type fakeSessionRepository struct {
	sessions []entity.Session
}

func (r *fakeSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *fakeSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	var matches []*entity.Session
	for i := range r.sessions {
		if sessionMatches(&r.sessions[i], specs) {
			s := r.sessions[i]
			matches = append(matches, &s)
		}
	}
	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "created_at" {
			sort.SliceStable(matches, func(i, j int) bool {
				if order.Desc {
					return matches[i].CreatedAt.After(matches[j].CreatedAt)
				}
				return matches[i].CreatedAt.Before(matches[j].CreatedAt)
			})
		}
	}
	return matches, nil
}

func sessionMatches(s *entity.Session, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.OwnedBy:
			if s.UserId != sp.UserID {
				return false
			}
		case specification.ByMode:
			if s.Mode != sp.Mode {
				return false
			}
		case specification.ByStatus:
			if s.Status != sp.Status {
				return false
			}
		case specification.ByObjectiveID:
			if s.LoId == nil || *s.LoId != sp.LoID {
				return false
			}
		}
	}
	return true
}

// --- session messages ---

type fakeMessageRepository struct {
	messages []entity.SessionMessage
	nextSeq  int64
}

func (r *fakeMessageRepository) Create(ctx context.Context, message *entity.SessionMessage) error {
	r.nextSeq++
	message.Seq = r.nextSeq
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionMessage, error) {
	var matches []*entity.SessionMessage
	for i := range r.messages {
		if messageMatches(&r.messages[i], specs) {
			m := r.messages[i]
			matches = append(matches, &m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Timestamp.Equal(matches[j].Timestamp) {
			return matches[i].Timestamp.Before(matches[j].Timestamp)
		}
		return matches[i].Seq < matches[j].Seq
	})
	return matches, nil
}

func messageMatches(m *entity.SessionMessage, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.BySessionID:
			if m.SessionId != sp.SessionID {
				return false
			}
		case specification.ByObjectiveID:
			if m.LoId != sp.LoID {
				return false
			}
		}
	}
	return true
}

// --- learning objectives ---

type fakeObjectiveRepository struct {
	objectives []entity.LearningObjective
}

func (r *fakeObjectiveRepository) FindByID(ctx context.Context, loId int) (*entity.LearningObjective, error) {
	for i := range r.objectives {
		if r.objectives[i].Id == loId {
			o := r.objectives[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *fakeObjectiveRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningObjective, error) {
	after := 0
	filtered := false
	for _, spec := range specs {
		if sp, ok := spec.(specification.ObjectiveIDAfter); ok {
			after = sp.LoID
			filtered = true
		}
	}

	var matches []*entity.LearningObjective
	for i := range r.objectives {
		if filtered && r.objectives[i].Id <= after {
			continue
		}
		o := r.objectives[i]
		matches = append(matches, &o)
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Id < matches[j].Id })
	return matches, nil
}

// --- learner models ---

type learnerKey struct {
	userId uuid.UUID
	loId   int
}

type fakeLearnerModelRepository struct {
	records map[learnerKey]entity.LearnerModel
}

func (r *fakeLearnerModelRepository) Get(ctx context.Context, userId uuid.UUID, loId int) (*entity.LearnerModel, error) {
	record, ok := r.records[learnerKey{userId, loId}]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *fakeLearnerModelRepository) Upsert(ctx context.Context, record *entity.LearnerModel) error {
	r.records[learnerKey{record.UserId, record.LoId}] = *record
	return nil
}

func (r *fakeLearnerModelRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.LearnerModel, error) {
	var matches []*entity.LearnerModel
	for key, record := range r.records {
		if key.userId == userId {
			rec := record
			matches = append(matches, &rec)
		}
	}
	return matches, nil
}
