package events

import "time"

const (
	TypeUserRegistered    = "USER_REGISTERED"
	TypeObjectiveMastered = "OBJECTIVE_MASTERED"
)

// NewUserRegisteredEvent is emitted after a learner account is created.
func NewUserRegisteredEvent(userId, email string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

// NewObjectiveMasteredEvent is emitted when a learner first reaches full
// proficiency on a learning objective.
func NewObjectiveMasteredEvent(userId string, loId int) Event {
	return BaseEvent{
		Type: TypeObjectiveMastered,
		Data: map[string]interface{}{
			"user_id": userId,
			"lo_id":   loId,
		},
		OccurredAt: time.Now(),
	}
}
