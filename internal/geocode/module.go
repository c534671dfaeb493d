package geocode

import (
	apphttp "sabores_backend/internal/http"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
)

// Module wires the geocoding HTTP routes.
type Module struct {
	svc     *Service
	handler *Handler
}

func NewModule(cfg config.GeocodeConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}

func (m *Module) Name() string {
	return "geocode"
}

// Service exposes the geocoding service for other modules (discovery).
func (m *Module) Service() *Service {
	return m.svc
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/geocode")
	group.GET("/search", m.handler.Search)
	group.GET("/reverse", m.handler.Reverse)
}

var _ apphttp.Module = (*Module)(nil)
