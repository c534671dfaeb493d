package poi

import (
	apphttp "sabores_backend/internal/http"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
)

// Module wires the POI search HTTP routes.
type Module struct {
	svc     *Service
	handler *Handler
}

func NewModule(cfg config.POIConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}

func (m *Module) Name() string {
	return "poi"
}

// Service exposes the POI service for other modules (discovery, markers).
func (m *Module) Service() *Service {
	return m.svc
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/pois")
	group.GET("", m.handler.Search)
}

var _ apphttp.Module = (*Module)(nil)
