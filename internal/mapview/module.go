package mapview

import (
	apphttp "sabores_backend/internal/http"
	"sabores_backend/platform/config"
	"sabores_backend/platform/events"
	"sabores_backend/platform/logger"
)

// Module wires the map view read model and its HTTP routes.
type Module struct {
	svc     *Service
	handler *Handler
}

// NewModule builds the view store and subscribes it to discovery events.
func NewModule(cfg config.DiscoveryConfig, bus events.Bus, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	svc.RegisterHandlers(bus)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}

func (m *Module) Name() string {
	return "mapview"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/mapview")
	group.GET("/:id", m.handler.Get)
	group.POST("/:id/invalidate", m.handler.Invalidate)
}

var _ apphttp.Module = (*Module)(nil)
