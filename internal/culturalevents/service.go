// Package culturalevents queries PredictHQ for high-rank cultural events
// near a coordinate.
package culturalevents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sabores_backend/platform/apperr"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
	"sabores_backend/platform/validator"
)

const (
	searchRadius = "50km"
	resultLimit  = "20"
	minimumRank  = "70"
	resultFields = "id,title,category,start,location,description"
)

// allowedCategories is the PredictHQ category subset the UI exposes.
var allowedCategories = map[string]struct{}{
	"festivals":       {},
	"concerts":        {},
	"sports":          {},
	"conferences":     {},
	"community":       {},
	"exhibitions":     {},
	"performing_arts": {},
}

var categoryIcons = map[string]string{
	"festivals":       "🎭",
	"concerts":        "🎤",
	"sports":          "🏟️",
	"conferences":     "🎓",
	"community":       "🤝",
	"exhibitions":     "🖼️",
	"performing_arts": "🎬",
	"nightlife":       "🌙",
}

const defaultIcon = "📅"

// IconFor returns the display glyph for a PredictHQ category.
func IconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return defaultIcon
}

type Service struct {
	client  *http.Client
	baseURL string
	token   string
	val     *validator.Validator
	log     *logger.Logger
}

func NewService(cfg config.CulturalEventsConfig, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: cfg.GetPredictHQURL(),
		token:   cfg.GetPredictHQToken(),
		val:     val,
		log:     log,
	}
}

// Search returns up to 20 events within 50km of the coordinate, ranked
// highest first and limited to rank 70 and above. Provider failures
// degrade to an empty list.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]Event, error) {
	if err := s.val.Struct(req); err != nil {
		return nil, apperr.Validation("lat and lon are required coordinates within range")
	}

	params := url.Values{}
	params.Set("within", fmt.Sprintf("%s@%v,%v", searchRadius, *req.Lat, *req.Lon))
	params.Set("limit", resultLimit)
	params.Set("sort", "-rank")
	params.Set("rank.gte", minimumRank)
	params.Set("fields", resultFields)
	if filtered := filterCategories(req.Categories); len(filtered) > 0 {
		params.Set("category", strings.Join(filtered, ","))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/events/?"+params.Encode(), nil)
	if err != nil {
		s.log.UpstreamError("predicthq", err)
		return []Event{}, nil
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.log.UpstreamError("predicthq", err)
		return []Event{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.UpstreamError("predicthq", fmt.Errorf("unexpected status %d", resp.StatusCode))
		return []Event{}, nil
	}

	var parsed predictHQResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.log.UpstreamError("predicthq", err)
		return []Event{}, nil
	}

	events := make([]Event, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		events = append(events, Event{
			ID:          result.ID,
			Title:       result.Title,
			Category:    result.Category,
			Start:       result.Start,
			Description: result.Description,
			Location:    result.Location,
			Icon:        IconFor(result.Category),
		})
	}
	return events, nil
}

// filterCategories keeps only categories the provider query may carry.
func filterCategories(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, category := range parts {
		category = strings.TrimSpace(category)
		if _, ok := allowedCategories[category]; ok {
			out = append(out, category)
		}
	}
	return out
}
