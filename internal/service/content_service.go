package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/pkg/events"

	"github.com/google/uuid"
)

const contentLogModule = "CONTENT_EVENTS"

// EventPublisher sends events to other instances. *nats.Publisher implements it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IContentService interface {
	// Refresh announces that searchable content changed so every instance drops its caches.
	Refresh(ctx context.Context, request *dto.RefreshContentRequest) (*dto.RefreshContentResponse, error)
}

type contentService struct {
	instanceId       string
	publisherService IPublisherService
	eventPublisher   EventPublisher
	logger           logger.ILogger
}

// NewContentService accepts a nil eventPublisher when NATS is not available.
func NewContentService(
	instanceId string,
	publisherService IPublisherService,
	eventPublisher EventPublisher,
	logger logger.ILogger,
) IContentService {
	return &contentService{
		instanceId:       instanceId,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           logger,
	}
}

func (s *contentService) Refresh(ctx context.Context, request *dto.RefreshContentRequest) (*dto.RefreshContentResponse, error) {
	msg := dto.ContentChangedMessage{
		EventId:    uuid.New(),
		Origin:     s.instanceId,
		Reason:     request.Reason,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, fmt.Errorf("publish content change: %w", err)
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeContentChanged,
			Data: map[string]interface{}{
				"event_id":    msg.EventId.String(),
				"origin":      msg.Origin,
				"reason":      msg.Reason,
				"occurred_at": msg.OccurredAt.Format(time.RFC3339Nano),
			},
			OccurredAt: msg.OccurredAt,
		}
		// Peers fall back to cache expiry, so a NATS failure does not fail the request
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn(contentLogModule, "Failed to publish CONTENT_CHANGED event", map[string]interface{}{
				"event_id": msg.EventId.String(),
				"error":    err.Error(),
			})
		}
	}

	s.logger.Info(contentLogModule, "Content change published", map[string]interface{}{
		"event_id": msg.EventId.String(),
		"reason":   msg.Reason,
	})

	return &dto.RefreshContentResponse{EventId: msg.EventId}, nil
}
