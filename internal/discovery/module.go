package discovery

import (
	domainevents "sabores_backend/internal/events"
	apphttp "sabores_backend/internal/http"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
)

// Module wires the discovery session HTTP routes.
type Module struct {
	svc     *Service
	handler *Handler
}

func NewModule(cfg config.DiscoveryConfig, geocoder GeocodeSearcher, pois POISearcher, bus domainevents.Bus, log *logger.Logger) *Module {
	svc := NewService(cfg, geocoder, pois, bus, log)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}

func (m *Module) Name() string {
	return "discovery"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/discovery")
	group.POST("/sessions", m.handler.Create)
	group.GET("/sessions/:id", m.handler.Get)
	group.POST("/sessions/:id/search", m.handler.Search)
	group.POST("/sessions/:id/select", m.handler.Select)
	group.PUT("/sessions/:id/radius", m.handler.ChangeRadius)
}

var _ apphttp.Module = (*Module)(nil)
