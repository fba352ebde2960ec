package mapper

import (
	"ai-tutoring-be/internal/entity"
	"ai-tutoring-be/internal/model"
)

// TutorMapper converts between domain entities and GORM models for the
// tutoring tables (sessions, session_messages, learner_models,
// learning_objectives).
type TutorMapper struct{}

func NewTutorMapper() *TutorMapper {
	return &TutorMapper{}
}

// Session mappers

func (m *TutorMapper) SessionToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Mode:      s.Mode,
		Status:    s.Status,
		LoId:      s.LoId,
		CreatedAt: s.CreatedAt,
	}
}

func (m *TutorMapper) SessionToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Mode:      s.Mode,
		Status:    s.Status,
		LoId:      s.LoId,
		CreatedAt: s.CreatedAt,
	}
}

// Message mappers

func (m *TutorMapper) MessageToEntity(msg *model.SessionMessage) *entity.SessionMessage {
	if msg == nil {
		return nil
	}
	return &entity.SessionMessage{
		Seq:          msg.Seq,
		Id:           msg.Id,
		SessionId:    msg.SessionId,
		LoId:         msg.LoId,
		Role:         msg.Role,
		Text:         msg.Text,
		ActivityType: msg.ActivityType,
		Timestamp:    msg.Timestamp,
	}
}

func (m *TutorMapper) MessageToModel(msg *entity.SessionMessage) *model.SessionMessage {
	if msg == nil {
		return nil
	}
	return &model.SessionMessage{
		Seq:          msg.Seq,
		Id:           msg.Id,
		SessionId:    msg.SessionId,
		LoId:         msg.LoId,
		Role:         msg.Role,
		Text:         msg.Text,
		ActivityType: msg.ActivityType,
		Timestamp:    msg.Timestamp,
	}
}

// Learner model mappers

func (m *TutorMapper) LearnerModelToEntity(lm *model.LearnerModel) *entity.LearnerModel {
	if lm == nil {
		return nil
	}
	return &entity.LearnerModel{
		UserId:      lm.UserId,
		LoId:        lm.LoId,
		Proficiency: lm.Proficiency,
		Feedback:    lm.Feedback,
		UpdatedAt:   lm.UpdatedAt,
	}
}

func (m *TutorMapper) LearnerModelToModel(lm *entity.LearnerModel) *model.LearnerModel {
	if lm == nil {
		return nil
	}
	return &model.LearnerModel{
		UserId:      lm.UserId,
		LoId:        lm.LoId,
		Proficiency: lm.Proficiency,
		Feedback:    lm.Feedback,
		UpdatedAt:   lm.UpdatedAt,
	}
}

// Objective mappers

func (m *TutorMapper) ObjectiveToEntity(lo *model.LearningObjective) *entity.LearningObjective {
	if lo == nil {
		return nil
	}
	return &entity.LearningObjective{
		Id:        lo.Id,
		Topic:     lo.Topic,
		Objective: lo.Objective,
	}
}

func (m *TutorMapper) ObjectiveToModel(lo *entity.LearningObjective) *model.LearningObjective {
	if lo == nil {
		return nil
	}
	return &model.LearningObjective{
		Id:        lo.Id,
		Topic:     lo.Topic,
		Objective: lo.Objective,
	}
}
