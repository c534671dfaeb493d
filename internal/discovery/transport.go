package discovery

import (
	"sabores_backend/internal/geocode"
	"sabores_backend/internal/poi"
)

// State is the controller state of one discovery session.
type State string

const (
	StateIdle              State = "idle"
	StateListingCandidates State = "listing_candidates"
	StateFetching          State = "fetching"
	StateReady             State = "ready"
)

// SearchPlacesRequest submits a free-text place query to a session.
type SearchPlacesRequest struct {
	Query string `json:"query"`
}

// SelectRequest picks one of the session's visible candidates.
type SelectRequest struct {
	PlaceID string `json:"placeId" binding:"required"`
}

// RadiusRequest changes the session's search radius.
type RadiusRequest struct {
	Radius int `json:"radius" binding:"required"`
}

// PlacePoint is a labeled coordinate pair.
type PlacePoint struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// SessionSnapshot is the externally visible state of a session.
type SessionSnapshot struct {
	ID           string                    `json:"id"`
	State        State                     `json:"state"`
	Center       PlacePoint                `json:"center"`
	Radius       int                       `json:"radius"`
	HasSelection bool                      `json:"hasSelection"`
	Candidates   []geocode.PlaceCandidate  `json:"candidates"`
	POIs         []poi.PointOfInterest     `json:"pois"`
}
