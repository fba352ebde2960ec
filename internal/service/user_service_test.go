package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ai-tutoring-be/internal/apperror"
	"ai-tutoring-be/internal/constant"
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProficiencySummaryLabels(t *testing.T) {
	factory, uow := newFakeFactory()
	seedCatalog(uow, 3)
	cache := memory.NewCatalogCache()
	svc := NewUserService(factory, cache)

	userId := uuid.New()
	feedback := "well done"
	uow.learner.records[learnerKey{userId, 1}] = entity.LearnerModel{
		UserId: userId, LoId: 1, Proficiency: 1, Feedback: &feedback, UpdatedAt: time.Now(),
	}
	uow.learner.records[learnerKey{userId, 2}] = entity.LearnerModel{
		UserId: userId, LoId: 2, Proficiency: 0.5, UpdatedAt: time.Now(),
	}
	// Objective 3 has no record and must still appear with score 0.

	summary, err := svc.ProficiencySummary(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, summary, 3)

	assert.Equal(t, constant.ProficiencyLabelMastered, summary[0].Status)
	assert.Equal(t, 1.0, summary[0].Score)
	assert.Equal(t, "well done", summary[0].Feedback)

	assert.Equal(t, constant.ProficiencyLabelInProgress, summary[1].Status)
	assert.Equal(t, 0.5, summary[1].Score)

	assert.Equal(t, constant.ProficiencyLabelNotStarted, summary[2].Status)
	assert.Equal(t, 0.0, summary[2].Score)
	assert.Empty(t, summary[2].Feedback)
}

func TestProficiencySummaryUsesCacheUntilInvalidated(t *testing.T) {
	factory, uow := newFakeFactory()
	seedCatalog(uow, 1)
	cache := memory.NewCatalogCache()
	svc := NewUserService(factory, cache)

	userId := uuid.New()

	first, err := svc.ProficiencySummary(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, constant.ProficiencyLabelNotStarted, first[0].Status)

	// A write that bypasses the service is invisible until the cache
	// entry is dropped.
	uow.learner.records[learnerKey{userId, 1}] = entity.LearnerModel{
		UserId: userId, LoId: 1, Proficiency: 1, UpdatedAt: time.Now(),
	}

	stale, err := svc.ProficiencySummary(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, constant.ProficiencyLabelNotStarted, stale[0].Status)

	cache.InvalidateSummary(userId.String())

	fresh, err := svc.ProficiencySummary(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, constant.ProficiencyLabelMastered, fresh[0].Status)
}

func TestUpdateProficiency(t *testing.T) {
	factory, uow := newFakeFactory()
	seedCatalog(uow, 2)
	cache := memory.NewCatalogCache()
	svc := NewUserService(factory, cache)

	userId := uuid.New()
	feedback := "manually graded"

	err := svc.UpdateProficiency(context.Background(), userId, 2, &dto.UpdateProficiencyRequest{
		Proficiency: 0.5,
		Feedback:    &feedback,
	})
	require.NoError(t, err)

	record, err := uow.learner.Get(context.Background(), userId, 2)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 0.5, record.Proficiency)

	err = svc.UpdateProficiency(context.Background(), userId, 99, &dto.UpdateProficiencyRequest{Proficiency: 1})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUpsertUserAndGetProfile(t *testing.T) {
	factory, _ := newFakeFactory()
	svc := NewUserService(factory, memory.NewCatalogCache())

	id := uuid.New()
	_, err := svc.UpsertUser(context.Background(), &dto.UpsertUserRequest{
		Id: id, Name: "Ada", Email: "ada@example.com", SkillLevel: 2,
	})
	require.NoError(t, err)

	// Upsert again with a new skill level, same id.
	_, err = svc.UpsertUser(context.Background(), &dto.UpsertUserRequest{
		Id: id, Name: "Ada", Email: "ada@example.com", SkillLevel: 3,
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, profile.SkillLevel)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestConsumerInvalidatesSummaryCache(t *testing.T) {
	cache := memory.NewCatalogCache()
	userId := uuid.New()
	cache.SaveSummary(userId.String(), []*dto.ProficiencySummaryItem{{LoId: 1}})

	cs := &consumerService{cache: cache}

	payload, err := json.Marshal(dto.MasteryAchievedMessage{UserId: userId, LoId: 1})
	require.NoError(t, err)
	cs.processMessage(message.NewMessage("1", payload))

	_, found := cache.GetSummary(userId.String())
	assert.False(t, found)
}
