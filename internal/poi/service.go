package poi

import (
	"context"
	"strconv"
	"strings"

	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
	"sabores_backend/platform/phone"
)

// unnamedPlaceholder is shown when the source record carries no name tag.
const unnamedPlaceholder = "Sin nombre"

// Service normalizes heterogeneous Overpass features into PointOfInterest
// values. Like geocoding, it degrades to an empty result on provider failure;
// callers cannot distinguish "no results" from "provider down" at this layer.
type Service struct {
	client *Client
	log    *logger.Logger
}

func NewService(cfg config.POIConfig, log *logger.Logger) *Service {
	return &Service{
		client: NewClient(cfg.GetOverpassURL(), cfg.GetHTTPUserAgent()),
		log:    log,
	}
}

// Search returns the normalized POIs inside the circle of radiusMeters around
// (lat, lng). Records without resolvable coordinates are dropped before they
// can reach any rendering layer.
func (s *Service) Search(ctx context.Context, lat, lng float64, radiusMeters int) []PointOfInterest {
	elements, err := s.client.Search(ctx, lat, lng, radiusMeters)
	if err != nil {
		s.log.UpstreamError("overpass", err)
		return []PointOfInterest{}
	}

	pois := make([]PointOfInterest, 0, len(elements))
	for _, el := range elements {
		poi, ok := normalize(el)
		if !ok {
			continue
		}
		pois = append(pois, poi)
	}

	return pois
}

// normalize converts one raw feature. Way features substitute their centroid
// for point coordinates; a feature resolving to no coordinates is rejected.
func normalize(el overpassElement) (PointOfInterest, bool) {
	lat, lng := el.Lat, el.Lon
	if lat == 0 && lng == 0 && el.Center != nil {
		lat, lng = el.Center.Lat, el.Center.Lon
	}
	if lat == 0 && lng == 0 {
		return PointOfInterest{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	name := tags["name"]
	if name == "" {
		name = unnamedPlaceholder
	}

	poi := PointOfInterest{
		ID:           strconv.FormatInt(el.ID, 10),
		Name:         name,
		Category:     ParseCategory(tags["amenity"]),
		Lat:          lat,
		Lng:          lng,
		Address:      buildAddress(tags),
		Cuisine:      tags["cuisine"],
		Website:      tags["website"],
		OpeningHours: tags["opening_hours"],
		Tags:         tags,
	}

	if raw := tags["phone"]; raw != "" {
		poi.Phone = phone.NormalizeE164(raw)
	}

	return poi, true
}

func buildAddress(tags map[string]string) string {
	if full := tags["addr:full"]; full != "" {
		return full
	}
	return strings.TrimSpace(tags["addr:street"] + " " + tags["addr:housenumber"])
}
