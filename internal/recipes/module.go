package recipes

import (
	apphttp "sabores_backend/internal/http"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
)

// Module wires the recipe proxy routes.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.RecipesConfig, log *logger.Logger) *Module {
	return &Module{
		handler: NewHandler(NewService(cfg, log)),
	}
}

func (m *Module) Name() string {
	return "recipes"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/recipes/search", m.handler.Search)
}

var _ apphttp.Module = (*Module)(nil)
