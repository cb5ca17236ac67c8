package domain

import "time"

// RealtimeEventType classifies a lifecycle notification.
type RealtimeEventType string

const (
	EventStatusChanged    RealtimeEventType = "status_changed"
	EventAssigned         RealtimeEventType = "assigned"
	EventUpdated          RealtimeEventType = "updated"
	EventConflictDetected RealtimeEventType = "conflict_detected"
)

// WildcardScope subscribes to every dispute's events.
const WildcardScope = "*"

// RealtimeEvent is a transient lifecycle notification delivered through the
// event bus. There is no replay; events exist only between publish and the
// delivering tick.
type RealtimeEvent struct {
	ID        string            `json:"id"`
	Type      RealtimeEventType `json:"type"`
	DisputeID string            `json:"dispute_id"`
	Payload   map[string]any    `json:"payload"`
	Timestamp time.Time         `json:"timestamp"`
	ActorID   string            `json:"actor_id"`
}
