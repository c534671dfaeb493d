package markers

import (
	"context"
	"net/http"

	"sabores_backend/internal/poi"
	"sabores_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const defaultRadiusMeters = 2000

// POISearcher is the slice of the POI service this handler needs.
type POISearcher interface {
	Search(ctx context.Context, lat, lng float64, radiusMeters int) []poi.PointOfInterest
}

// MarkerView pairs a POI with its marker treatment and detail summary.
type MarkerView struct {
	POI     poi.PointOfInterest `json:"poi"`
	Icon    Icon                `json:"icon"`
	Summary Summary             `json:"summary"`
}

// Handler exposes the marker-annotated POI read.
type Handler struct {
	pois POISearcher
}

func NewHandler(pois POISearcher) *Handler {
	return &Handler{pois: pois}
}

// Markers handles GET /api/v1/pois/markers?lat=...&lon=...&radius=...
func (h *Handler) Markers(c *gin.Context) {
	var req poi.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lat and lon are required coordinates", nil)
		return
	}

	if req.Radius <= 0 {
		req.Radius = defaultRadiusMeters
	}

	results := h.pois.Search(c.Request.Context(), *req.Lat, *req.Lon, req.Radius)

	views := make([]MarkerView, 0, len(results))
	for _, p := range results {
		views = append(views, MarkerView{
			POI:     p,
			Icon:    IconFor(p.Category),
			Summary: SummaryOf(p),
		})
	}

	httpkit.OK(c, views)
}
