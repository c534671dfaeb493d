package poi

import (
	"net/http"

	"sabores_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// defaultRadiusMeters is applied when a stateless read omits the radius.
const defaultRadiusMeters = 2000

// Handler exposes the stateless POI search endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles GET /api/v1/pois?lat=...&lon=...&radius=...
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lat and lon are required coordinates", nil)
		return
	}

	if req.Radius <= 0 {
		req.Radius = defaultRadiusMeters
	}

	pois := h.svc.Search(c.Request.Context(), *req.Lat, *req.Lon, req.Radius)
	httpkit.OK(c, pois)
}
