// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"sabores_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Discovery Domain Events
// =============================================================================

// SessionCreated is published when a new discovery session is seeded with the
// default center.
type SessionCreated struct {
	BaseEvent
	SessionID string  `json:"sessionId"`
	Label     string  `json:"label"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

func (e SessionCreated) EventName() string { return "discovery.session.created" }

// PlaceSelected is published when a user picks a geocode candidate, moving the
// session center. Radius-only and POI-set-only changes never publish this.
type PlaceSelected struct {
	BaseEvent
	SessionID string  `json:"sessionId"`
	Label     string  `json:"label"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

func (e PlaceSelected) EventName() string { return "discovery.place.selected" }
