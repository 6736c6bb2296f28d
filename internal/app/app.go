package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/vk/goalwalker/internal/builder"
	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/hcl_adapter"
	"github.com/vk/goalwalker/internal/inmemorytopology"
	"github.com/vk/goalwalker/internal/metrics"
	"github.com/vk/goalwalker/internal/registry"
	"github.com/vk/goalwalker/internal/session"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	loader     config.Loader
	registry   *registry.Registry
	metrics    *metrics.Recorder
	httpServer *http.Server

	// current is replaced wholesale when the map is reloaded.
	current atomic.Pointer[loadedMap]
}

// loadedMap is one successfully built map with the session walking it.
type loadedMap struct {
	model   *config.Model
	session *session.Session
}

// NewApp loads the map, builds it into a store and registers the strategy
// modules (coreModules when none are given). Rendered walks go to outW,
// logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All strategy modules registered.", "count", len(modules), "strategies", reg.Names())

	if _, err := reg.Lookup(cfg.Strategy); err != nil {
		return nil, fmt.Errorf("default strategy: %w", err)
	}

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		registry: reg,
		metrics:  metrics.New(),
	}
	m, err := a.loadMap(ctx)
	if err != nil {
		return nil, err
	}
	a.current.Store(m)
	return a, nil
}

// loadMap reads every map path, builds a fresh store and validates the
// declared trips against it. It does not touch the current map.
func (a *App) loadMap(ctx context.Context) (*loadedMap, error) {
	logger := ctxlog.FromContext(ctx)

	model, err := loadModel(ctx, a.config, a.loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	logger.Debug("Map loaded and translated into unified model.", "cities", len(model.Cities), "trips", len(model.Trips))

	store := inmemorytopology.New()
	if err := builder.Build(ctx, model, store); err != nil {
		return nil, fmt.Errorf("failed to build map: %w", err)
	}
	if err := a.registry.ValidateTrips(ctx, model.Trips); err != nil {
		return nil, err
	}

	return &loadedMap{
		model:   model,
		session: session.New(store, a.registry, a.metrics, a.config.Strategy),
	}, nil
}

func loadModel(ctx context.Context, cfg *Config, loader config.Loader) (*config.Model, error) {
	if len(cfg.MapPaths) == 0 {
		ctxlog.FromContext(ctx).Debug("No map path given, using the builtin map.")
		return hcl_adapter.Builtin(ctx)
	}
	if loader == nil {
		return nil, fmt.Errorf("no loader available for %v", cfg.MapPaths)
	}
	return loader.Load(ctx, cfg.MapPaths...)
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Session returns the session for the current map. Walks started before a
// reload keep the session they began with.
func (a *App) Session() *session.Session {
	return a.current.Load().session
}

func (a *App) model() *config.Model {
	return a.current.Load().model
}
