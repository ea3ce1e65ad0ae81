package events

import "time"

// Event is the contract every published event satisfies.
type Event interface {
	// EventType returns the event's unique code (e.g. "ORDER_PAID").
	EventType() string

	// Payload returns the data carried with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a ready-made Event for publishers that do not need their own
// type.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
