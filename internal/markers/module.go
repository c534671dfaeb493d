package markers

import (
	apphttp "sabores_backend/internal/http"
)

// Module wires the marker-annotated POI route.
type Module struct {
	handler *Handler
}

func NewModule(pois POISearcher) *Module {
	return &Module{handler: NewHandler(pois)}
}

func (m *Module) Name() string {
	return "markers"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/pois/markers", m.handler.Markers)
}

var _ apphttp.Module = (*Module)(nil)
