package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"ai-tutoring-be/internal/apperror"
	"ai-tutoring-be/internal/constant"
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/unitofwork"
	"ai-tutoring-be/pkg/events"
	"ai-tutoring-be/pkg/grading"
	"ai-tutoring-be/pkg/llm"
	pktNats "ai-tutoring-be/pkg/nats"

	"github.com/google/uuid"
)

type IAssessmentService interface {
	GenerateQuestion(ctx context.Context, req *dto.AssessmentQuestionRequest) (*dto.AssessmentQuestionResponse, error)
	EvaluateResponse(ctx context.Context, requesterId uuid.UUID, req *dto.EvaluationRequest) (*dto.EvaluationResponse, error)
}

type assessmentService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	appLogger        logger.ILogger
	llmTimeout       time.Duration
}

func NewAssessmentService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	appLogger logger.ILogger,
	llmTimeout time.Duration,
) IAssessmentService {
	return &assessmentService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		appLogger:        appLogger,
		llmTimeout:       llmTimeout,
	}
}

// generate wraps the upstream call with a bounded timeout. Timeouts and
// upstream failures surface to the caller as UpstreamUnavailable and are
// never retried: a regenerated question or verdict would not match the
// one the learner saw.
func (s *assessmentService) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	text, err := s.llmProvider.Generate(ctx, prompt, llm.WithMaxTokens(maxTokens))
	if err != nil {
		s.appLogger.Warn("assessment", "Upstream generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", apperror.UpstreamUnavailable(err)
	}
	return text, nil
}

func (s *assessmentService) GenerateQuestion(ctx context.Context, req *dto.AssessmentQuestionRequest) (*dto.AssessmentQuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	objective, err := uow.LearningObjectiveRepository().FindByID(ctx, req.LoId)
	if err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, apperror.NotFound("learning objective")
	}

	prompt := fmt.Sprintf(constant.AssessmentQuestionPromptV1, objective.Objective, objective.Topic)

	// The generated text is trusted verbatim, the prompt mandates a
	// single standalone question and nothing else.
	question, err := s.generate(ctx, prompt, constant.AssessmentQuestionMaxTokens)
	if err != nil {
		return nil, err
	}

	return &dto.AssessmentQuestionResponse{Question: strings.TrimSpace(question)}, nil
}

func (s *assessmentService) EvaluateResponse(ctx context.Context, requesterId uuid.UUID, req *dto.EvaluationRequest) (*dto.EvaluationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := findOwnedSession(ctx, uow, requesterId, req.SessionId)
	if err != nil {
		return nil, err
	}

	objective, err := uow.LearningObjectiveRepository().FindByID(ctx, req.LoId)
	if err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, apperror.NotFound("learning objective")
	}

	prompt := fmt.Sprintf(constant.EvaluationPromptV1, objective.Objective, req.Question, req.UserInput)

	raw, err := s.generate(ctx, prompt, constant.EvaluationMaxTokens)
	if err != nil {
		return nil, err
	}

	result := grading.Parse(raw)

	// Persist the exchange and, on mastery, the proficiency record in
	// one transaction. Storage failures propagate unmodified.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	answer := &entity.SessionMessage{
		Id:           uuid.New(),
		SessionId:    session.Id,
		LoId:         req.LoId,
		Role:         constant.MessageRoleUser,
		Text:         req.UserInput,
		ActivityType: constant.ActivityTypeAssessment,
		Timestamp:    now,
	}
	if err := uow.SessionMessageRepository().Create(ctx, answer); err != nil {
		return nil, err
	}

	verdict := &entity.SessionMessage{
		Id:           uuid.New(),
		SessionId:    session.Id,
		LoId:         req.LoId,
		Role:         constant.MessageRoleTutor,
		Text:         result.Feedback,
		ActivityType: constant.ActivityTypeAssessment,
		Timestamp:    now,
	}
	if err := uow.SessionMessageRepository().Create(ctx, verdict); err != nil {
		return nil, err
	}

	mastered := result.Score == 1
	if mastered {
		feedback := result.Feedback
		record := &entity.LearnerModel{
			UserId:      session.UserId,
			LoId:        req.LoId,
			Proficiency: constant.ProficiencyMastered,
			Feedback:    &feedback,
			UpdatedAt:   now,
		}
		if err := uow.LearnerModelRepository().Upsert(ctx, record); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if mastered {
		s.publishMastery(ctx, session.UserId, req.LoId)
	}

	return &dto.EvaluationResponse{
		Score:    result.Score,
		Feedback: result.Feedback,
		Followup: result.Followup,
	}, nil
}

// publishMastery fans the mastery fact out after commit: the internal
// topic drives summary-cache invalidation, the NATS event feeds external
// consumers. Both are best effort.
func (s *assessmentService) publishMastery(ctx context.Context, userId uuid.UUID, loId int) {
	payload, err := json.Marshal(dto.MasteryAchievedMessage{UserId: userId, LoId: loId})
	if err != nil {
		log.Printf("[ERROR] Failed to marshal mastery message: %v", err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish mastery message: %v", err)
	}

	if s.eventPublisher != nil {
		evt := events.NewObjectiveMasteredEvent(userId.String(), loId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish OBJECTIVE_MASTERED event: %v", err)
		}
	}
}
