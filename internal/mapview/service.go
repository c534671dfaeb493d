// Package mapview maintains per-session map view state as a read model
// over discovery events. It recenters only when a place is selected;
// radius and POI changes never move the view.
package mapview

import (
	"context"
	"sync"
	"time"

	domainevents "sabores_backend/internal/events"
	"sabores_backend/platform/apperr"
	"sabores_backend/platform/config"
	"sabores_backend/platform/events"
	"sabores_backend/platform/logger"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultZoom = 15

	// settlingWindow is how long after creation a view reports itself as
	// still settling, independent of any data loading.
	settlingWindow = time.Second
)

// View is the client-facing snapshot of a session's map state.
type View struct {
	SessionID   string  `json:"sessionId"`
	CenterLat   float64 `json:"centerLat"`
	CenterLon   float64 `json:"centerLon"`
	Zoom        int     `json:"zoom"`
	Settling    bool    `json:"settling"`
	LayoutEpoch uint64  `json:"layoutEpoch"`
}

type viewState struct {
	mu          sync.Mutex
	centerLat   float64
	centerLon   float64
	zoom        int
	createdAt   time.Time
	layoutEpoch uint64
}

// Service holds one view per discovery session, expiring alongside the
// session itself.
type Service struct {
	views *gocache.Cache
	log   *logger.Logger

	// now is swappable for settling-window tests.
	now func() time.Time
}

func NewService(cfg config.DiscoveryConfig, log *logger.Logger) *Service {
	ttl := cfg.GetSessionTTL()
	return &Service{
		views: gocache.New(ttl, 2*ttl),
		log:   log,
		now:   time.Now,
	}
}

// RegisterHandlers subscribes the view store to the discovery events it
// projects from.
func (s *Service) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(domainevents.SessionCreated{}.EventName(), events.HandlerFunc(s.handleSessionCreated))
	bus.Subscribe(domainevents.PlaceSelected{}.EventName(), events.HandlerFunc(s.handlePlaceSelected))
}

func (s *Service) handleSessionCreated(_ context.Context, event events.Event) error {
	evt, ok := event.(domainevents.SessionCreated)
	if !ok {
		return nil
	}
	view := &viewState{
		centerLat: evt.Lat,
		centerLon: evt.Lon,
		zoom:      defaultZoom,
		createdAt: s.now(),
	}
	s.views.Set(evt.SessionID, view, gocache.DefaultExpiration)
	s.log.Debug("map view created", "session_id", evt.SessionID)
	return nil
}

func (s *Service) handlePlaceSelected(_ context.Context, event events.Event) error {
	evt, ok := event.(domainevents.PlaceSelected)
	if !ok {
		return nil
	}
	view, err := s.get(evt.SessionID)
	if err != nil {
		// Selection for a session whose view already expired.
		s.log.Warn("map view missing on selection", "session_id", evt.SessionID)
		return nil
	}
	view.mu.Lock()
	view.centerLat = evt.Lat
	view.centerLon = evt.Lon
	view.zoom = defaultZoom
	view.mu.Unlock()
	return nil
}

// Snapshot returns the current view for a session.
func (s *Service) Snapshot(sessionID string) (*View, error) {
	view, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	view.mu.Lock()
	defer view.mu.Unlock()
	return &View{
		SessionID:   sessionID,
		CenterLat:   view.centerLat,
		CenterLon:   view.centerLon,
		Zoom:        view.zoom,
		Settling:    s.now().Sub(view.createdAt) < settlingWindow,
		LayoutEpoch: view.layoutEpoch,
	}, nil
}

// Invalidate bumps the layout epoch, signalling that cached dimensions
// are stale after a resize or visibility change.
func (s *Service) Invalidate(sessionID string) (*View, error) {
	view, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	view.mu.Lock()
	view.layoutEpoch++
	view.mu.Unlock()
	return s.Snapshot(sessionID)
}

func (s *Service) get(sessionID string) (*viewState, error) {
	entry, found := s.views.Get(sessionID)
	if !found {
		return nil, apperr.NotFound("map view not found")
	}
	// Keep the view alive as long as it is being read, matching the
	// sliding expiration of the session it belongs to.
	s.views.Set(sessionID, entry, gocache.DefaultExpiration)
	return entry.(*viewState), nil
}
