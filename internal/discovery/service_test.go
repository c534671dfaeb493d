package discovery

import (
	"context"
	"sync"
	"testing"
	"time"

	domainevents "sabores_backend/internal/events"
	"sabores_backend/internal/geocode"
	"sabores_backend/internal/poi"
	"sabores_backend/platform/apperr"
	"sabores_backend/platform/logger"

	"github.com/google/uuid"
)

type testConfig struct{}

func (testConfig) GetSessionTTL() time.Duration  { return time.Minute }
func (testConfig) GetDefaultCenterLat() float64  { return 16.7569 }
func (testConfig) GetDefaultCenterLon() float64  { return -93.1292 }
func (testConfig) GetDefaultCenterLabel() string { return "Tuxtla Gutiérrez, Chiapas" }
func (testConfig) GetDefaultRadiusMeters() int   { return 2000 }

type fakeGeocoder struct {
	mu      sync.Mutex
	queries []string
	results []geocode.PlaceCandidate
}

func (f *fakeGeocoder) Search(_ context.Context, query string) []geocode.PlaceCandidate {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.results
}

func (f *fakeGeocoder) queryLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

type poiCall struct {
	lat, lng float64
	radius   int
}

type fakePOISearcher struct {
	mu      sync.Mutex
	calls   []poiCall
	results []poi.PointOfInterest
}

func (f *fakePOISearcher) Search(_ context.Context, lat, lng float64, radius int) []poi.PointOfInterest {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, poiCall{lat: lat, lng: lng, radius: radius})
	return f.results
}

func (f *fakePOISearcher) callLog() []poiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]poiCall(nil), f.calls...)
}

func (f *fakePOISearcher) setResults(results []poi.PointOfInterest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = results
}

func newTestService(geocoder GeocodeSearcher, pois POISearcher) *Service {
	log := logger.New("development")
	return NewService(testConfig{}, geocoder, pois, domainevents.NewInMemoryBus(log), log)
}

var oaxacaCandidates = []geocode.PlaceCandidate{
	{PlaceID: "101", Label: "Oaxaca de Juárez, Oaxaca, México", Lat: 17.0654, Lon: -96.7237},
	{PlaceID: "102", Label: "Oaxaca, México", Lat: 17.0, Lon: -96.5},
	{PlaceID: "103", Label: "Santa María Oaxaca, México", Lat: 17.1, Lon: -96.6},
}

func pointsOfInterest(ids ...string) []poi.PointOfInterest {
	out := make([]poi.PointOfInterest, 0, len(ids))
	for _, id := range ids {
		out = append(out, poi.PointOfInterest{ID: id, Name: "POI " + id, Category: poi.CategoryRestaurant, Lat: 1, Lng: 1})
	}
	return out
}

func TestCreateSessionIssuesOneInitialFetch(t *testing.T) {
	pois := &fakePOISearcher{results: pointsOfInterest("a", "b")}
	svc := newTestService(&fakeGeocoder{}, pois)

	snapshot := svc.CreateSession(context.Background())

	calls := pois.callLog()
	if len(calls) != 1 {
		t.Fatalf("got %d POI fetches at mount, want exactly 1", len(calls))
	}
	if calls[0].lat != 16.7569 || calls[0].lng != -93.1292 || calls[0].radius != 2000 {
		t.Errorf("initial fetch = %+v, want (16.7569, -93.1292, 2000)", calls[0])
	}
	if snapshot.State != StateReady {
		t.Errorf("state = %q, want ready", snapshot.State)
	}
	if snapshot.Center.Label != "Tuxtla Gutiérrez, Chiapas" {
		t.Errorf("center label = %q", snapshot.Center.Label)
	}
	if snapshot.HasSelection {
		t.Error("fresh session must not report a selection")
	}
	if len(snapshot.POIs) != 2 {
		t.Errorf("got %d POIs, want 2", len(snapshot.POIs))
	}
}

func TestSubmitSearchBlankQuerySkipsGeocoder(t *testing.T) {
	geocoder := &fakeGeocoder{results: oaxacaCandidates}
	svc := newTestService(geocoder, &fakePOISearcher{})
	sess := svc.CreateSession(context.Background())

	snapshot, err := svc.SubmitSearch(context.Background(), sess.ID, "   ")
	if err != nil {
		t.Fatalf("SubmitSearch returned error: %v", err)
	}

	if len(geocoder.queryLog()) != 0 {
		t.Fatal("blank query must not reach the geocoder")
	}
	if len(snapshot.Candidates) != 0 {
		t.Errorf("got %d candidates, want 0", len(snapshot.Candidates))
	}
}

func TestSearchAndSelectFlow(t *testing.T) {
	geocoder := &fakeGeocoder{results: oaxacaCandidates}
	pois := &fakePOISearcher{results: pointsOfInterest("x")}
	svc := newTestService(geocoder, pois)
	sess := svc.CreateSession(context.Background())

	snapshot, err := svc.SubmitSearch(context.Background(), sess.ID, "Oaxaca")
	if err != nil {
		t.Fatalf("SubmitSearch returned error: %v", err)
	}
	if got := geocoder.queryLog(); len(got) != 1 || got[0] != "Oaxaca" {
		t.Fatalf("geocoder queries = %v, want exactly [Oaxaca]", got)
	}
	if len(snapshot.Candidates) != 3 {
		t.Fatalf("got %d candidates, want 3", len(snapshot.Candidates))
	}
	if snapshot.State != StateReady {
		t.Errorf("state after search = %q, want ready", snapshot.State)
	}

	pois.setResults(pointsOfInterest("p1", "p2"))
	snapshot, err = svc.SelectCandidate(context.Background(), sess.ID, "101")
	if err != nil {
		t.Fatalf("SelectCandidate returned error: %v", err)
	}

	calls := pois.callLog()
	if len(calls) != 2 {
		t.Fatalf("got %d POI fetches, want 2 (mount + selection)", len(calls))
	}
	last := calls[len(calls)-1]
	if last.lat != 17.0654 || last.lng != -96.7237 || last.radius != 2000 {
		t.Errorf("selection fetch = %+v, want candidate coordinates at radius 2000", last)
	}

	if !snapshot.HasSelection {
		t.Error("selection must be recorded")
	}
	if snapshot.Center.Lat != 17.0654 || snapshot.Center.Lon != -96.7237 {
		t.Errorf("center = %+v, want the chosen candidate", snapshot.Center)
	}
	if len(snapshot.Candidates) != 0 {
		t.Error("candidate list must be cleared on selection")
	}
	if len(snapshot.POIs) != 2 {
		t.Errorf("POI set not replaced: got %d, want 2", len(snapshot.POIs))
	}
}

func TestSelectRequiresVisibleCandidates(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, &fakePOISearcher{})
	sess := svc.CreateSession(context.Background())

	_, err := svc.SelectCandidate(context.Background(), sess.ID, "101")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestRadiusChangeBeforeSelectionStoresWithoutFetch(t *testing.T) {
	pois := &fakePOISearcher{}
	svc := newTestService(&fakeGeocoder{}, pois)
	sess := svc.CreateSession(context.Background())

	snapshot, err := svc.ChangeRadius(context.Background(), sess.ID, 5000)
	if err != nil {
		t.Fatalf("ChangeRadius returned error: %v", err)
	}

	if len(pois.callLog()) != 1 {
		t.Fatalf("radius change at the default center must not fetch; got %d calls, want 1", len(pois.callLog()))
	}
	if snapshot.Radius != 5000 {
		t.Errorf("radius = %d, want 5000 (stored even without a fetch)", snapshot.Radius)
	}
}

func TestRadiusChangeAfterSelectionRefetchesOnce(t *testing.T) {
	geocoder := &fakeGeocoder{results: oaxacaCandidates}
	pois := &fakePOISearcher{results: pointsOfInterest("old")}
	svc := newTestService(geocoder, pois)
	sess := svc.CreateSession(context.Background())

	if _, err := svc.SubmitSearch(context.Background(), sess.ID, "Oaxaca"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SelectCandidate(context.Background(), sess.ID, "101"); err != nil {
		t.Fatal(err)
	}

	pois.setResults(pointsOfInterest("new1", "new2", "new3"))
	snapshot, err := svc.ChangeRadius(context.Background(), sess.ID, 5000)
	if err != nil {
		t.Fatalf("ChangeRadius returned error: %v", err)
	}

	calls := pois.callLog()
	if len(calls) != 3 {
		t.Fatalf("got %d POI fetches, want 3 (mount + selection + radius change)", len(calls))
	}
	last := calls[len(calls)-1]
	if last.lat != 17.0654 || last.lng != -96.7237 {
		t.Errorf("radius refetch moved the center: %+v", last)
	}
	if last.radius != 5000 {
		t.Errorf("radius refetch used %d, want 5000", last.radius)
	}

	if len(snapshot.POIs) != 3 {
		t.Fatalf("POI set must be fully replaced, got %d", len(snapshot.POIs))
	}
	for _, p := range snapshot.POIs {
		if p.ID == "old" {
			t.Error("stale POI survived the replacement")
		}
	}
}

func TestRadiusOutsideEnumerationRejected(t *testing.T) {
	pois := &fakePOISearcher{}
	svc := newTestService(&fakeGeocoder{}, pois)
	sess := svc.CreateSession(context.Background())

	_, err := svc.ChangeRadius(context.Background(), sess.ID, 1234)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(pois.callLog()) != 1 {
		t.Error("rejected radius must not trigger a fetch")
	}
}

func TestSessionLookupErrors(t *testing.T) {
	svc := newTestService(&fakeGeocoder{}, &fakePOISearcher{})

	if _, err := svc.Snapshot("not-a-uuid"); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("malformed id: err = %v, want bad request", err)
	}
	if _, err := svc.Snapshot(uuid.NewString()); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("unknown id: err = %v, want not found", err)
	}
}

// gatedPOISearcher hands control of each Search call to the test, so
// completion order can be forced independently of start order.
type gatedCall struct {
	radius  int
	release chan []poi.PointOfInterest
}

type gatedPOISearcher struct {
	calls chan *gatedCall
}

func (g *gatedPOISearcher) Search(_ context.Context, _, _ float64, radius int) []poi.PointOfInterest {
	call := &gatedCall{radius: radius, release: make(chan []poi.PointOfInterest)}
	g.calls <- call
	return <-call.release
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestLastStartedWinsForPOIFetches(t *testing.T) {
	geocoder := &fakeGeocoder{results: oaxacaCandidates}
	pois := &fakePOISearcher{}
	svc := newTestService(geocoder, pois)
	sess := svc.CreateSession(context.Background())

	if _, err := svc.SubmitSearch(context.Background(), sess.ID, "Oaxaca"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SelectCandidate(context.Background(), sess.ID, "101"); err != nil {
		t.Fatal(err)
	}

	// Swap in the gated searcher once the session has a real selection.
	gated := &gatedPOISearcher{calls: make(chan *gatedCall)}
	svc.pois = gated

	resultsA := pointsOfInterest("a")
	resultsB := pointsOfInterest("b1", "b2")

	done := make(chan struct{}, 2)
	go func() {
		_, _ = svc.ChangeRadius(context.Background(), sess.ID, 5000)
		done <- struct{}{}
	}()
	callA := <-gated.calls

	go func() {
		_, _ = svc.ChangeRadius(context.Background(), sess.ID, 10000)
		done <- struct{}{}
	}()
	callB := <-gated.calls

	if callA.radius != 5000 || callB.radius != 10000 {
		t.Fatalf("unexpected in-flight radii: %d, %d", callA.radius, callB.radius)
	}

	// Complete B first: the later-started request wins.
	callB.release <- resultsB
	waitFor(t, func() bool {
		snapshot, err := svc.Snapshot(sess.ID)
		return err == nil && snapshot.State == StateReady && len(snapshot.POIs) == 2
	})

	// A completes late and must be detected as stale and discarded.
	callA.release <- resultsA
	<-done
	<-done

	snapshot, err := svc.Snapshot(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.Radius != 10000 {
		t.Errorf("radius = %d, want 10000", snapshot.Radius)
	}
	if len(snapshot.POIs) != 2 || snapshot.POIs[0].ID != "b1" {
		t.Errorf("final POI set = %+v, want the later request's result", snapshot.POIs)
	}
	if snapshot.State != StateReady {
		t.Errorf("state = %q, want ready", snapshot.State)
	}
}

// gatedGeocoder mirrors gatedPOISearcher for candidate searches.
type gatedGeocodeCall struct {
	query   string
	release chan []geocode.PlaceCandidate
}

type gatedGeocoder struct {
	calls chan *gatedGeocodeCall
}

func (g *gatedGeocoder) Search(_ context.Context, query string) []geocode.PlaceCandidate {
	call := &gatedGeocodeCall{query: query, release: make(chan []geocode.PlaceCandidate)}
	g.calls <- call
	return <-call.release
}

func TestLastStartedWinsForCandidateSearches(t *testing.T) {
	gated := &gatedGeocoder{calls: make(chan *gatedGeocodeCall)}
	svc := newTestService(gated, &fakePOISearcher{})

	// CreateSession does not touch the geocoder, so it can run ungated.
	sess := svc.CreateSession(context.Background())

	done := make(chan struct{}, 2)
	go func() {
		_, _ = svc.SubmitSearch(context.Background(), sess.ID, "Oaxaca")
		done <- struct{}{}
	}()
	callA := <-gated.calls

	go func() {
		_, _ = svc.SubmitSearch(context.Background(), sess.ID, "Puebla")
		done <- struct{}{}
	}()
	callB := <-gated.calls

	pueblaCandidates := []geocode.PlaceCandidate{{PlaceID: "201", Label: "Puebla, México", Lat: 19.04, Lon: -98.2}}

	callB.release <- pueblaCandidates
	waitFor(t, func() bool {
		snapshot, err := svc.Snapshot(sess.ID)
		return err == nil && len(snapshot.Candidates) == 1
	})

	callA.release <- oaxacaCandidates
	<-done
	<-done

	snapshot, err := svc.Snapshot(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(snapshot.Candidates) != 1 || snapshot.Candidates[0].PlaceID != "201" {
		t.Errorf("candidates = %+v, want only the later query's result", snapshot.Candidates)
	}
}
