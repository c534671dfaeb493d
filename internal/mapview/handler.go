package mapview

import (
	"github.com/gin-gonic/gin"

	"sabores_backend/platform/httpkit"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Get handles GET /api/v1/mapview/:id
func (h *Handler) Get(c *gin.Context) {
	view, err := h.svc.Snapshot(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, view)
}

// Invalidate handles POST /api/v1/mapview/:id/invalidate
func (h *Handler) Invalidate(c *gin.Context) {
	view, err := h.svc.Invalidate(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, view)
}
