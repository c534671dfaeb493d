// Package events provides the in-process event bus the discovery pipeline
// publishes its domain events on. Event definitions live in internal/events;
// this package is mechanism only.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event carried on the bus.
type Event interface {
	// EventName identifies the event type; handlers subscribe by this name.
	EventName() string
	// OccurredAt reports when the event happened.
	OccurredAt() time.Time
}

// BaseEvent carries the fields shared by all events.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// OccurredAt reports when the event happened.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps a base event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes events of one named type.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function into a Handler.
type HandlerFunc func(ctx context.Context, event Event) error

// Handle calls the underlying function.
func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes events to, and registers handlers for, named event types.
type Bus interface {
	// Publish delivers the event to every handler subscribed to its name.
	// Delivery is asynchronous; handler errors are logged, not returned.
	Publish(ctx context.Context, event Event)

	// PublishSync delivers the event sequentially and waits for all
	// handlers, returning their joined errors. Used where the caller needs
	// the read model updated before it responds.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler for the event name, which must match
	// the value the event's EventName returns.
	Subscribe(eventName string, handler Handler)
}
