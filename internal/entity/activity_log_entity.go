package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an append-only record of a domain event.
type ActivityLog struct {
	Id         uuid.UUID
	EventType  string
	EntityId   uuid.UUID
	Details    map[string]interface{}
	OccurredAt time.Time
}
