// Package firstavailable registers the default "first" strategy: always
// move to the first unvisited neighbor in stored order.
package firstavailable

import (
	"context"

	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/registry"
	"github.com/vk/goalwalker/internal/topologystore"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// New returns agent.FirstAvailable; it needs nothing from the map.
func New(context.Context, topologystore.Store, nodeid.ID) (agent.Strategy, error) {
	return agent.FirstAvailable, nil
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStrategy(agent.DefaultStrategyName, New)
}
