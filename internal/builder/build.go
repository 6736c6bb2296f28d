package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/topologystore"
)

var (
	// ErrEmptyMap is returned when the model declares no cities.
	ErrEmptyMap = errors.New("map declares no cities")
	// ErrDuplicateCity is wrapped when a city is declared more than once,
	// in one file or across files of any format.
	ErrDuplicateCity = errors.New("city declared more than once")
)

// Build populates store from model and validates every trip against it.
func Build(ctx context.Context, model *config.Model, store topologystore.Store) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting map construction.")

	if model == nil || len(model.Cities) == 0 {
		return ErrEmptyMap
	}

	// First pass: register all cities.
	if err := createCities(ctx, model.Cities, store); err != nil {
		return err
	}
	logger.Debug("Build: City creation complete.", "city_count", len(model.Cities))

	// Second pass: link routes in declaration order.
	if err := linkRoutes(ctx, model.Cities, store); err != nil {
		return err
	}
	logger.Debug("Build: Route linking complete.")

	if err := validateTrips(ctx, model.Trips, store); err != nil {
		return err
	}
	logger.Debug("Build: Trip validation passed.", "trip_count", len(model.Trips))

	logger.Debug("Build: Map construction successful.")
	return nil
}

// createCities performs the first pass of map creation.
func createCities(ctx context.Context, cities []*config.City, store topologystore.Store) error {
	declared := make(map[nodeid.ID]string, len(cities))
	for _, c := range cities {
		id, err := nodeid.Parse(c.Name)
		if err != nil {
			return fmt.Errorf("city declared at %s: %w", c.Source, err)
		}
		if first, dup := declared[id]; dup {
			return fmt.Errorf("city '%s' at %s, first declared at %s: %w", id, c.Source, first, ErrDuplicateCity)
		}
		declared[id] = c.Source
		if err := store.AddCity(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// linkRoutes performs the second pass, appending each neighbor in order.
func linkRoutes(ctx context.Context, cities []*config.City, store topologystore.Store) error {
	logger := ctxlog.FromContext(ctx)
	for _, c := range cities {
		from := nodeid.ID(c.Name)
		for _, raw := range c.Neighbors {
			to, err := nodeid.Parse(raw)
			if err != nil {
				return fmt.Errorf("city '%s' declared at %s lists neighbor %q: %w", from, c.Source, raw, err)
			}
			if !store.Has(ctx, to) {
				return fmt.Errorf("city '%s' declared at %s lists neighbor '%s', which is not a declared city: %w", from, c.Source, to, topologystore.ErrUnknownCity)
			}
			if from == to {
				logger.Warn("City lists itself as a neighbor; the route can never be taken.", "city", from)
			}
			logger.Debug("Linking route.", "from", from, "to", to)
			if err := store.AddRoute(ctx, from, to); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateTrips checks that every trip references known cities.
func validateTrips(ctx context.Context, trips []*config.Trip, store topologystore.Store) error {
	for _, t := range trips {
		for role, raw := range map[string]string{"start": t.Start, "goal": t.Goal} {
			id, err := nodeid.Parse(raw)
			if err != nil {
				return fmt.Errorf("trip '%s' %s: %w", t.Name, role, err)
			}
			if !store.Has(ctx, id) {
				return fmt.Errorf("trip '%s' %s '%s': %w", t.Name, role, id, topologystore.ErrUnknownCity)
			}
		}
	}
	return nil
}
