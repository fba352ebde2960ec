package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the mastery topic and drops the cached
// proficiency summary of the affected user so the next read reflects
// the new record.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	cache     *memory.CatalogCache
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, cache *memory.CatalogCache) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		cache:     cache,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.MasteryAchievedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal mastery message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.cache.InvalidateSummary(payload.UserId.String())
	msg.Ack()
}
