package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/pkg/events"
	pktNats "mentorlink-be/pkg/nats"
)

// EventSubscriber is implemented by *nats.Subscriber.
type EventSubscriber interface {
	Subscribe(ctx context.Context, eventType string, durableName string, handler pktNats.EventHandler) error
}

type IContentEventBridge interface {
	Start(ctx context.Context) error
}

// contentEventBridge forwards CONTENT_CHANGED events from other instances
// onto the local topic. It never publishes back to NATS.
type contentEventBridge struct {
	instanceId       string
	subscriber       EventSubscriber
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewContentEventBridge(
	instanceId string,
	subscriber EventSubscriber,
	publisherService IPublisherService,
	logger logger.ILogger,
) IContentEventBridge {
	return &contentEventBridge{
		instanceId:       instanceId,
		subscriber:       subscriber,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (b *contentEventBridge) Start(ctx context.Context) error {
	durable := "content-cache-" + b.instanceId
	return b.subscriber.Subscribe(ctx, events.TypeContentChanged, durable, b.handle)
}

func (b *contentEventBridge) handle(ctx context.Context, event events.Event) error {
	data := event.Payload()
	if origin, _ := data["origin"].(string); origin == b.instanceId {
		// Already invalidated locally when it was published
		return nil
	}

	// Payload keys match dto.ContentChangedMessage, so re-encoding is enough.
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode content change: %w", err)
	}

	if err := b.publisherService.Publish(ctx, payload); err != nil {
		return fmt.Errorf("forward content change: %w", err)
	}

	b.logger.Debug(contentLogModule, "Forwarded remote content change", map[string]interface{}{
		"origin": data["origin"],
	})
	return nil
}
