// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateCity converts the HCL city schema into the agnostic model. The
// neighbors expression must evaluate, without variables, to something
// convertible to list(string).
func (l *Loader) translateCity(ctx context.Context, c *CityBlock, source string) (*config.City, error) {
	logger := ctxlog.FromContext(ctx).With("city", c.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL city to internal config model.")

	city := &config.City{Name: c.Name, Neighbors: []string{}, Source: source}
	if !isExprDefined(ctx, c.Neighbors, "neighbors") {
		logger.Debug("City declares no neighbors.")
		return city, nil
	}

	val, diags := c.Neighbors.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid neighbors for city '%s': %w", c.Name, diags)
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("neighbors for city '%s' at %s must be a list of strings: %w", c.Name, c.Neighbors.Range(), err)
	}
	if listVal.IsNull() {
		return city, nil
	}
	if !listVal.IsWhollyKnown() {
		return nil, fmt.Errorf("neighbors for city '%s' at %s must be known at load time", c.Name, c.Neighbors.Range())
	}

	for it := listVal.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() {
			return nil, fmt.Errorf("neighbors for city '%s' at %s contain a null entry", c.Name, c.Neighbors.Range())
		}
		city.Neighbors = append(city.Neighbors, elem.AsString())
	}

	logger.Debug("City translated.", "neighbors", city.Neighbors)
	return city, nil
}

// translateTrip converts the HCL trip schema into the agnostic model.
func (l *Loader) translateTrip(t *TripBlock, source string) *config.Trip {
	trip := &config.Trip{
		Name:   t.Name,
		Start:  t.Start,
		Goal:   t.Goal,
		Source: source,
	}
	if t.Strategy != nil {
		trip.Strategy = *t.Strategy
	}
	return trip
}
