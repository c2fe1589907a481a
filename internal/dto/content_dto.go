package dto

import (
	"time"

	"github.com/google/uuid"
)

type RefreshContentRequest struct {
	Reason string `json:"reason" validate:"max=200"`
}

type RefreshContentResponse struct {
	EventId uuid.UUID `json:"event_id"`
}

// ContentChangedMessage is the payload of content-changed events, both on the
// in-process topic and on NATS.
type ContentChangedMessage struct {
	EventId    uuid.UUID `json:"event_id"`
	Origin     string    `json:"origin"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
