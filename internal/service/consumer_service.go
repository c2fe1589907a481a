package service

import (
	"context"
	"encoding/json"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

// CacheInvalidator is any snapshot cache that can be dropped.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	caches     []CacheInvalidator
	logger     logger.ILogger
}

// NewConsumerService invalidates caches in the given order, outermost last.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	logger logger.ILogger,
	caches ...CacheInvalidator,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		caches:     caches,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ContentChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(contentLogModule, "Failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	for _, c := range cs.caches {
		if err := c.Invalidate(ctx); err != nil {
			// Entries still expire by TTL
			cs.logger.Warn(contentLogModule, "Cache invalidation failed", map[string]interface{}{
				"event_id": payload.EventId.String(),
				"error":    err.Error(),
			})
		}
	}

	cs.logger.Info(contentLogModule, "Caches invalidated", map[string]interface{}{
		"event_id": payload.EventId.String(),
		"origin":   payload.Origin,
		"reason":   payload.Reason,
	})
	msg.Ack()
}
