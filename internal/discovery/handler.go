package discovery

import (
	"net/http"

	"sabores_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the discovery session endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/discovery/sessions
func (h *Handler) Create(c *gin.Context) {
	snapshot := h.svc.CreateSession(c.Request.Context())
	httpkit.Created(c, snapshot)
}

// Get handles GET /api/v1/discovery/sessions/:id
func (h *Handler) Get(c *gin.Context) {
	snapshot, err := h.svc.Snapshot(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, snapshot)
}

// Search handles POST /api/v1/discovery/sessions/:id/search
func (h *Handler) Search(c *gin.Context) {
	var req SearchPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	snapshot, err := h.svc.SubmitSearch(c.Request.Context(), c.Param("id"), req.Query)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, snapshot)
}

// Select handles POST /api/v1/discovery/sessions/:id/select
func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "placeId is required", nil)
		return
	}

	snapshot, err := h.svc.SelectCandidate(c.Request.Context(), c.Param("id"), req.PlaceID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, snapshot)
}

// ChangeRadius handles PUT /api/v1/discovery/sessions/:id/radius
func (h *Handler) ChangeRadius(c *gin.Context) {
	var req RadiusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "radius is required", nil)
		return
	}

	snapshot, err := h.svc.ChangeRadius(c.Request.Context(), c.Param("id"), req.Radius)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, snapshot)
}
