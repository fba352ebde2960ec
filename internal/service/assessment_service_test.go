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
	"ai-tutoring-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
	options []*llm.Options
}

func (f *fakeLLM) resolve(opts []llm.Option) {
	resolved := &llm.Options{}
	for _, opt := range opts {
		opt(resolved)
	}
	f.options = append(f.options, resolved)
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) > 0 {
		f.prompts = append(f.prompts, history[len(history)-1].Content)
	}
	f.resolve(opts)
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.resolve(opts)
	return f.reply, f.err
}

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newAssessmentFixture(reply string, llmErr error) (*fakeUnitOfWork, *fakeLLM, *capturingPublisher, IAssessmentService) {
	factory, uow := newFakeFactory()
	seedCatalog(uow, 3)

	provider := &fakeLLM{reply: reply, err: llmErr}
	publisher := &capturingPublisher{}
	svc := NewAssessmentService(factory, provider, publisher, nil, nopLogger{}, time.Second)

	return uow, provider, publisher, svc
}

func seedSession(uow *fakeUnitOfWork, userId uuid.UUID) uuid.UUID {
	sessionId := uuid.New()
	loId := 1
	uow.sessions.sessions = append(uow.sessions.sessions, entity.Session{
		Id:        sessionId,
		UserId:    userId,
		Mode:      constant.SessionModeTutor,
		Status:    constant.SessionStatusActive,
		LoId:      &loId,
		CreatedAt: time.Now(),
	})
	return sessionId
}

func TestGenerateQuestion(t *testing.T) {
	_, provider, _, svc := newAssessmentFixture("  What does a for loop do?  ", nil)

	res, err := svc.GenerateQuestion(context.Background(), &dto.AssessmentQuestionRequest{LoId: 1})
	require.NoError(t, err)
	assert.Equal(t, "What does a for loop do?", res.Question)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "Basic Syntax & Data Types")

	// Questions are short, so the completion is capped tighter than an
	// evaluation's.
	require.Len(t, provider.options, 1)
	assert.Equal(t, constant.AssessmentQuestionMaxTokens, provider.options[0].MaxTokens)
}

func TestGenerateQuestionUnknownObjective(t *testing.T) {
	_, _, _, svc := newAssessmentFixture("question", nil)

	_, err := svc.GenerateQuestion(context.Background(), &dto.AssessmentQuestionRequest{LoId: 42})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestEvaluateStructuredFailureWritesNothing(t *testing.T) {
	reply := `{"score":0,"feedback":"missing return","followup":"what should you return?"}`
	uow, _, publisher, svc := newAssessmentFixture(reply, nil)

	userId := uuid.New()
	sessionId := seedSession(uow, userId)

	res, err := svc.EvaluateResponse(context.Background(), userId, &dto.EvaluationRequest{
		SessionId: sessionId,
		LoId:      1,
		Question:  "Write a function returning its argument.",
		UserInput: "def f(x): pass",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, "missing return", res.Feedback)
	assert.Equal(t, "what should you return?", res.Followup)

	// A failing score writes no proficiency record and publishes nothing.
	assert.Empty(t, uow.learner.records)
	assert.Empty(t, publisher.payloads)

	// The exchange still lands in the transcript.
	assert.Len(t, uow.messages.messages, 2)
}

func TestEvaluateFreeformMarksMastered(t *testing.T) {
	reply := "## FEEDBACK\nCorrect, clean and well indented.\n\n## SUMMARY\nSolid."
	uow, provider, publisher, svc := newAssessmentFixture(reply, nil)

	userId := uuid.New()
	sessionId := seedSession(uow, userId)

	res, err := svc.EvaluateResponse(context.Background(), userId, &dto.EvaluationRequest{
		SessionId: sessionId,
		LoId:      1,
		Question:  "Write a function returning its argument.",
		UserInput: "def f(x):\n    return x",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Score)
	assert.Equal(t, reply, res.Feedback)
	assert.Empty(t, res.Followup)

	record, err := uow.learner.Get(context.Background(), userId, 1)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 1.0, record.Proficiency)
	require.NotNil(t, record.Feedback)
	assert.Equal(t, reply, *record.Feedback)

	require.Len(t, provider.options, 1)
	assert.Equal(t, constant.EvaluationMaxTokens, provider.options[0].MaxTokens)

	require.Len(t, publisher.payloads, 1)
	var msg dto.MasteryAchievedMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, userId, msg.UserId)
	assert.Equal(t, 1, msg.LoId)
}

func TestEvaluateUpstreamFailure(t *testing.T) {
	uow, _, _, svc := newAssessmentFixture("", errors.New("connection refused"))

	userId := uuid.New()
	sessionId := seedSession(uow, userId)

	_, err := svc.EvaluateResponse(context.Background(), userId, &dto.EvaluationRequest{
		SessionId: sessionId,
		LoId:      1,
		Question:  "q",
		UserInput: "a",
	})
	assert.True(t, errors.Is(err, apperror.ErrUpstreamUnavailable))
	assert.Empty(t, uow.messages.messages)
}

func TestEvaluateSessionOwnership(t *testing.T) {
	uow, _, _, svc := newAssessmentFixture("reply", nil)

	sessionId := seedSession(uow, uuid.New())

	_, err := svc.EvaluateResponse(context.Background(), uuid.New(), &dto.EvaluationRequest{
		SessionId: sessionId,
		LoId:      1,
		Question:  "q",
		UserInput: "a",
	})
	assert.True(t, errors.Is(err, apperror.ErrNotAuthorized))
}
