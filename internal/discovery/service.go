package discovery

import (
	"context"
	"strings"
	"sync"

	domainevents "sabores_backend/internal/events"
	"sabores_backend/internal/geocode"
	"sabores_backend/internal/poi"
	"sabores_backend/platform/apperr"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// GeocodeSearcher is the slice of the geocode service the controller needs.
type GeocodeSearcher interface {
	Search(ctx context.Context, query string) []geocode.PlaceCandidate
}

// POISearcher is the slice of the POI service the controller needs.
type POISearcher interface {
	Search(ctx context.Context, lat, lng float64, radiusMeters int) []poi.PointOfInterest
}

// allowedRadii is the fixed radius enumeration, in meters.
var allowedRadii = map[int]bool{
	500:   true,
	1000:  true,
	2000:  true,
	5000:  true,
	10000: true,
}

// session is the per-user controller state. All mutation happens under mu,
// which serializes writes the way the original single event loop did.
//
// geocodeGen and poiGen implement the last-started-wins policy: each started
// request of a kind bumps the counter, and a completion whose generation is
// no longer current is discarded. Completions can arrive out of order, so the
// check happens on arrival, not at initiation.
type session struct {
	mu           sync.Mutex
	id           string
	state        State
	centerLabel  string
	centerLat    float64
	centerLon    float64
	radius       int
	hasSelection bool
	candidates   []geocode.PlaceCandidate
	pois         []poi.PointOfInterest
	geocodeGen   uint64
	poiGen       uint64
}

// Service orchestrates the place-search → geocode → POI → render pipeline for
// every session: candidate listing, selection, radius handling and the
// invalidation relationship between them.
type Service struct {
	sessions *gocache.Cache
	geocoder GeocodeSearcher
	pois     POISearcher
	bus      domainevents.Bus
	cfg      config.DiscoveryConfig
	log      *logger.Logger
}

func NewService(cfg config.DiscoveryConfig, geocoder GeocodeSearcher, pois POISearcher, bus domainevents.Bus, log *logger.Logger) *Service {
	ttl := cfg.GetSessionTTL()
	return &Service{
		sessions: gocache.New(ttl, 2*ttl),
		geocoder: geocoder,
		pois:     pois,
		bus:      bus,
		cfg:      cfg,
		log:      log,
	}
}

// CreateSession seeds a session with the default center and performs the one
// initial POI fetch at the default radius, without user interaction.
func (s *Service) CreateSession(ctx context.Context) *SessionSnapshot {
	sess := &session{
		id:          uuid.NewString(),
		state:       StateIdle,
		centerLabel: s.cfg.GetDefaultCenterLabel(),
		centerLat:   s.cfg.GetDefaultCenterLat(),
		centerLon:   s.cfg.GetDefaultCenterLon(),
		radius:      s.cfg.GetDefaultRadiusMeters(),
		candidates:  []geocode.PlaceCandidate{},
		pois:        []poi.PointOfInterest{},
	}
	s.sessions.Set(sess.id, sess, gocache.DefaultExpiration)

	if err := s.bus.PublishSync(ctx, domainevents.SessionCreated{
		BaseEvent: domainevents.NewBaseEvent(),
		SessionID: sess.id,
		Label:     sess.centerLabel,
		Lat:       sess.centerLat,
		Lon:       sess.centerLon,
	}); err != nil {
		s.log.Warn("session created event delivery failed", "error", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.fetchPOIs(ctx, sess, sess.centerLat, sess.centerLon, sess.radius)

	s.log.Info("discovery session created", "session_id", sess.id)
	return snapshotLocked(sess)
}

// Snapshot returns the current session state.
func (s *Service) Snapshot(id string) (*SessionSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshotLocked(sess), nil
}

// SubmitSearch resolves a free-text query into a candidate list. A blank
// query clears the list without touching the geocoder. The candidate list of
// a superseded search is never applied.
func (s *Service) SubmitSearch(ctx context.Context, id, query string) (*SessionSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		sess.candidates = []geocode.PlaceCandidate{}
		return snapshotLocked(sess), nil
	}

	sess.state = StateListingCandidates
	sess.geocodeGen++
	gen := sess.geocodeGen

	sess.mu.Unlock()
	candidates := s.geocoder.Search(ctx, query)
	sess.mu.Lock()

	if gen != sess.geocodeGen {
		// A later search started while this one was in flight.
		return snapshotLocked(sess), nil
	}

	sess.candidates = candidates
	sess.state = StateReady
	return snapshotLocked(sess), nil
}

// SelectCandidate commits one visible candidate as the session center and
// triggers the downstream POI fetch at the current radius.
func (s *Service) SelectCandidate(ctx context.Context, id, placeID string) (*SessionSnapshot, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var chosen *geocode.PlaceCandidate
	for i := range sess.candidates {
		if sess.candidates[i].PlaceID == placeID {
			chosen = &sess.candidates[i]
			break
		}
	}
	if chosen == nil {
		return nil, apperr.Validation("candidate is not available for selection")
	}

	sess.centerLabel = chosen.Label
	sess.centerLat = chosen.Lat
	sess.centerLon = chosen.Lon
	sess.hasSelection = true
	sess.candidates = []geocode.PlaceCandidate{}

	if err := s.bus.PublishSync(ctx, domainevents.PlaceSelected{
		BaseEvent: domainevents.NewBaseEvent(),
		SessionID: sess.id,
		Label:     sess.centerLabel,
		Lat:       sess.centerLat,
		Lon:       sess.centerLon,
	}); err != nil {
		s.log.Warn("place selected event delivery failed", "error", err)
	}

	s.fetchPOIs(ctx, sess, sess.centerLat, sess.centerLon, sess.radius)
	return snapshotLocked(sess), nil
}

// ChangeRadius stores the new radius. Only when a real selection has occurred
// does it re-trigger the POI fetch; before that the session still sits at the
// seeded default center and a refetch would be redundant.
func (s *Service) ChangeRadius(ctx context.Context, id string, radius int) (*SessionSnapshot, error) {
	if !allowedRadii[radius] {
		return nil, apperr.Validation("radius must be one of 500, 1000, 2000, 5000, 10000")
	}

	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.radius = radius
	if !sess.hasSelection {
		return snapshotLocked(sess), nil
	}

	s.fetchPOIs(ctx, sess, sess.centerLat, sess.centerLon, radius)
	return snapshotLocked(sess), nil
}

// fetchPOIs replaces the session's POI set. The caller must hold sess.mu; the
// lock is released for the duration of the provider call. A result whose
// generation was superseded while in flight is discarded on arrival.
func (s *Service) fetchPOIs(ctx context.Context, sess *session, lat, lng float64, radius int) {
	sess.state = StateFetching
	sess.poiGen++
	gen := sess.poiGen

	sess.mu.Unlock()
	results := s.pois.Search(ctx, lat, lng, radius)
	sess.mu.Lock()

	if gen != sess.poiGen {
		return
	}

	sess.pois = results
	sess.state = StateReady
}

func (s *Service) get(id string) (*session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.BadRequest("invalid session id")
	}

	val, found := s.sessions.Get(id)
	if !found {
		return nil, apperr.NotFound("session not found or expired")
	}

	sess := val.(*session)
	// Activity extends the session lifetime.
	s.sessions.Set(id, sess, gocache.DefaultExpiration)
	return sess, nil
}

func snapshotLocked(sess *session) *SessionSnapshot {
	return &SessionSnapshot{
		ID:    sess.id,
		State: sess.state,
		Center: PlacePoint{
			Label: sess.centerLabel,
			Lat:   sess.centerLat,
			Lon:   sess.centerLon,
		},
		Radius:       sess.radius,
		HasSelection: sess.hasSelection,
		Candidates:   sess.candidates,
		POIs:         sess.pois,
	}
}
