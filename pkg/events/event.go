package events

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	TransactionCreated = "TRANSACTION_CREATED"
	TransactionUpdated = "TRANSACTION_UPDATED"
	TransactionDeleted = "TRANSACTION_DELETED"
	CheckoutStarted    = "CHECKOUT_STARTED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "TRANSACTION_CREATED").
	EventType() string

	// EntityID is the id of the record the event is about.
	EntityID() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the one Event implementation carried on the bus.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Entity     string                 `json:"entity_id"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) EntityID() string {
	return e.Entity
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func New(eventType, entityId string, data map[string]interface{}, at time.Time) BaseEvent {
	return BaseEvent{Type: eventType, Entity: entityId, Data: data, OccurredAt: at}
}

// Encode serializes any Event into the JSON form used on the wire.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(BaseEvent{
		Type:       e.EventType(),
		Entity:     e.EntityID(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
}

func Decode(raw []byte) (BaseEvent, error) {
	var e BaseEvent
	if err := json.Unmarshal(raw, &e); err != nil {
		return BaseEvent{}, fmt.Errorf("decode event: %w", err)
	}
	if e.Type == "" {
		return BaseEvent{}, fmt.Errorf("decode event: missing type")
	}
	return e, nil
}
