package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/liveserver"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/render"
	"github.com/vk/goalwalker/internal/session"
)

// ErrNothingToDo is returned when neither a walk nor any trip was requested.
var ErrNothingToDo = errors.New("nothing to walk")

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", cfg.mode())

	if cfg.ServeAddr != "" {
		return a.serve(ctx, cfg)
	}

	if cfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx, cfg.HealthcheckPort)
		defer a.closeHealthcheckServer(ctx)
	}

	renderer, err := render.ByName(cfg.Output)
	if err != nil {
		return err
	}

	if cfg.Start != "" {
		return a.walk(ctx, renderer, "", session.Request{Start: cfg.Start, Goal: cfg.Goal, Strategy: cfg.Strategy})
	}
	return a.runTrips(ctx, renderer, cfg.Trip)
}

func (a *App) runTrips(ctx context.Context, renderer render.Renderer, only string) error {
	model := a.model()
	trips := model.Trips
	if only != "" {
		trip := model.FindTrip(only)
		if trip == nil {
			return fmt.Errorf("unknown trip '%s'", only)
		}
		trips = []*config.Trip{trip}
	}

	if len(trips) == 0 {
		return fmt.Errorf("%w: give a start and a goal or declare a trip. Cities on the map: %s", ErrNothingToDo, cityList(a.Session().Graph().Cities(ctx)))
	}

	for _, trip := range trips {
		req := session.Request{Start: trip.Start, Goal: trip.Goal, Strategy: trip.Strategy}
		if err := a.walk(ctx, renderer, trip.Name, req); err != nil {
			return fmt.Errorf("trip '%s': %w", trip.Name, err)
		}
	}
	a.logger.Info("🏁 All trips finished.", "count", len(trips))
	return nil
}

func (a *App) walk(ctx context.Context, renderer render.Renderer, title string, req session.Request) error {
	if title != "" {
		ctx = ctxlog.With(ctx, "trip", title)
	}
	sess := a.Session()
	res, err := sess.Walk(ctx, req)
	if err != nil {
		return err
	}

	if _, ok := renderer.(render.Text); ok && title != "" {
		fmt.Fprintf(a.outW, "Trip %s\n", title)
	}
	if err := renderer.Render(ctx, a.outW, sess.Graph(), res); err != nil {
		return fmt.Errorf("rendering walk: %w", err)
	}
	return nil
}

// serve runs the live server together with health and metrics endpoints on
// one listener until ctx is done.
func (a *App) serve(ctx context.Context, cfg *Config) error {
	live := liveserver.New(ctx, a.Session)

	stopWatching, err := a.watchMaps(ctx)
	if err != nil {
		return fmt.Errorf("watching map files: %w", err)
	}
	defer stopWatching()

	mux := a.baseMux(ctx)
	mux.Handle(liveserver.Path, live.Handler())

	a.httpServer = &http.Server{Addr: cfg.ServeAddr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("🛰️ Live server starting", "address", cfg.ServeAddr, "path", liveserver.Path, "cities", len(a.Session().Graph().Cities(ctx)))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("live server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		a.logger.Info("Context done, stopping live server.")
		return a.closeHealthcheckServer(context.WithoutCancel(ctx))
	}
}

// cityList is used by error messages that point the user at valid input.
func cityList(ids []nodeid.ID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return strings.Join(names, ", ")
}
