package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sabores_backend/platform/apperr"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"

	"golang.org/x/time/rate"
)

// candidateLimit bounds the dropdown to a usable size.
const candidateLimit = 5

// Service wraps free-text and reverse geocoding against Nominatim.
//
// Search follows a "degrades to no results" policy: transport and parse
// failures are logged and surface as an empty candidate list, never as an
// error. Reverse is a direct request/response endpoint and does return
// typed errors.
type Service struct {
	client       *http.Client
	limiter      *rate.Limiter
	log          *logger.Logger
	baseURL      string
	countryCodes string
	userAgent    string
}

func NewService(cfg config.GeocodeConfig, log *logger.Logger) *Service {
	return &Service{
		client: &http.Client{Timeout: 5 * time.Second},
		// Nominatim's usage policy allows at most one request per second.
		limiter:      rate.NewLimiter(rate.Every(time.Second), 1),
		log:          log,
		baseURL:      cfg.GetNominatimBaseURL(),
		countryCodes: cfg.GetGeocodeCountryCodes(),
		userAgent:    cfg.GetHTTPUserAgent(),
	}
}

// Search returns up to candidateLimit place candidates for a free-text query.
// A blank or whitespace-only query returns an empty list without a network call.
func (s *Service) Search(ctx context.Context, query string) []PlaceCandidate {
	if strings.TrimSpace(query) == "" {
		return []PlaceCandidate{}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(candidateLimit))
	if s.countryCodes != "" {
		params.Set("countrycodes", s.countryCodes)
	}

	var rawResults []nominatimPlace
	if err := s.get(ctx, "/search", params, &rawResults); err != nil {
		s.log.UpstreamError("nominatim", err)
		return []PlaceCandidate{}
	}

	candidates := make([]PlaceCandidate, 0, len(rawResults))
	for _, raw := range rawResults {
		// The limit travels as a query parameter, but the provider is not
		// trusted to honor it.
		if len(candidates) == candidateLimit {
			break
		}

		lat, errLat := strconv.ParseFloat(raw.Lat, 64)
		lon, errLon := strconv.ParseFloat(raw.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}

		candidates = append(candidates, PlaceCandidate{
			PlaceID: strconv.FormatInt(raw.PlaceID, 10),
			Label:   raw.DisplayName,
			Lat:     lat,
			Lon:     lon,
		})
	}

	return candidates
}

// Reverse resolves a coordinate pair to a "municipality, state, postal code,
// country" label.
func (s *Service) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var raw nominatimReverse
	if err := s.get(ctx, "/reverse", params, &raw); err != nil {
		s.log.UpstreamError("nominatim", err)
		return "", apperr.Unavailable("reverse geocoding unavailable").WithOp("geocode.Reverse")
	}

	label, ok := formatReverseLabel(raw.DisplayName)
	if !ok {
		return "", apperr.NotFound("no place found for the given coordinates")
	}

	return label, nil
}

func (s *Service) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s%s?%s", s.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// formatReverseLabel reduces a full display_name to municipality, state,
// postal code and country. Nominatim orders components from most to least
// specific, so those are the last four comma-separated parts.
func formatReverseLabel(displayName string) (string, bool) {
	parts := strings.Split(displayName, ", ")
	if len(parts) < 2 {
		return "", false
	}

	tail := make([]string, 0, 4)
	for _, idx := range []int{len(parts) - 4, len(parts) - 3, len(parts) - 2, len(parts) - 1} {
		if idx < 0 {
			continue
		}
		if trimmed := strings.TrimSpace(parts[idx]); trimmed != "" {
			tail = append(tail, trimmed)
		}
	}

	return strings.Join(tail, ", "), true
}
