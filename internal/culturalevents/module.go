package culturalevents

import (
	apphttp "sabores_backend/internal/http"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
	"sabores_backend/platform/validator"
)

// Module wires the cultural events routes. It is only registered when a
// PredictHQ token is configured.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.CulturalEventsConfig, val *validator.Validator, log *logger.Logger) *Module {
	return &Module{
		handler: NewHandler(NewService(cfg, val, log)),
	}
}

func (m *Module) Name() string {
	return "culturalevents"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/events", m.handler.Search)
}

var _ apphttp.Module = (*Module)(nil)
