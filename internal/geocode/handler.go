package geocode

import (
	"net/http"

	"sabores_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the geocoding endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles GET /api/v1/geocode/search?q=...
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query parameters", nil)
		return
	}

	candidates := h.svc.Search(c.Request.Context(), req.Query)
	httpkit.OK(c, candidates)
}

// Reverse handles GET /api/v1/geocode/reverse?lat=...&lon=...
func (h *Handler) Reverse(c *gin.Context) {
	var req ReverseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "lat and lon are required coordinates", nil)
		return
	}

	label, err := h.svc.Reverse(c.Request.Context(), *req.Lat, *req.Lon)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, ReverseResponse{Label: label})
}
