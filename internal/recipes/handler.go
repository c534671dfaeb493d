package recipes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sabores_backend/platform/httpkit"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Search handles POST /api/v1/recipes/search
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	recipes := h.svc.Search(c.Request.Context(), req.Location)
	httpkit.OK(c, gin.H{"recipes": recipes})
}
