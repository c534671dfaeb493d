package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sabores_backend/internal/culturalevents"
	"sabores_backend/internal/discovery"
	"sabores_backend/internal/events"
	"sabores_backend/internal/geocode"
	apphttp "sabores_backend/internal/http"
	"sabores_backend/internal/http/router"
	"sabores_backend/internal/mapview"
	"sabores_backend/internal/markers"
	"sabores_backend/internal/poi"
	"sabores_backend/internal/recipes"
	"sabores_backend/platform/config"
	"sabores_backend/platform/logger"
	"sabores_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	geocodeModule := geocode.NewModule(cfg, log)
	poiModule := poi.NewModule(cfg, log)
	markersModule := markers.NewModule(poiModule.Service())
	discoveryModule := discovery.NewModule(cfg, geocodeModule.Service(), poiModule.Service(), eventBus, log)

	// Map view state is a read model over discovery events
	mapviewModule := mapview.NewModule(cfg, eventBus, log)

	recipesModule := recipes.NewModule(cfg, log)

	modules := []apphttp.Module{
		geocodeModule,
		poiModule,
		markersModule,
		discoveryModule,
		mapviewModule,
		recipesModule,
	}

	if cfg.IsCulturalEventsEnabled() {
		modules = append(modules, culturalevents.NewModule(cfg, val, log))
		log.Info("cultural events module enabled")
	} else {
		log.Warn("PREDICTHQ_TOKEN not configured; cultural events disabled")
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules:  modules,
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
