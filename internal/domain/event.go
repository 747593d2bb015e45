package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventRequestCancelled = "request.cancelled"
	EventMissionCreated   = "mission.created"
	EventMissionClosed    = "mission.closed"
)

// RequestEvent is an audit log row, written in the transaction of the change
// it describes.
type RequestEvent struct {
	ID        uuid.UUID      `json:"id"`
	RequestID int64          `json:"request_id"`
	Type      string         `json:"type"`
	ActorID   *int64         `json:"actor_id,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewRequestEvent(requestID int64, typ string, actorID *int64, payload map[string]any, at time.Time) *RequestEvent {
	return &RequestEvent{
		ID:        uuid.New(),
		RequestID: requestID,
		Type:      typ,
		ActorID:   actorID,
		Payload:   payload,
		CreatedAt: at,
	}
}
