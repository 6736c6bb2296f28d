// Package nearest registers the "nearest" strategy: among the unvisited
// neighbors, move to the one with the fewest hops left to the goal.
//
// Hop counts are computed once per walk with a breadth-first search that
// runs backwards from the goal over incoming routes. Because every city on
// the walked path is strictly closer to the goal than the one before it,
// the walker's unchanged control structure then produces a shortest-hop
// path whenever the goal is reachable from the start.
package nearest

import (
	"context"
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/registry"
	"github.com/vk/goalwalker/internal/topologystore"
)

// Name is the registry name of this strategy.
const Name = "nearest"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStrategy(Name, New)
}

// Strategy chooses the candidate closest to the goal. Ties keep stored
// neighbor order; candidates with no route to the goal rank last.
type Strategy struct {
	goal     nodeid.ID
	distance map[nodeid.ID]int
}

// New precomputes hop distances to goal and returns the strategy.
func New(ctx context.Context, graph topologystore.Store, goal nodeid.ID) (agent.Strategy, error) {
	distance, err := distancesTo(ctx, graph, goal)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Computed hop distances to goal.", "goal", goal, "reachable_from", len(distance))
	return &Strategy{goal: goal, distance: distance}, nil
}

// Choose implements agent.Strategy.
func (s *Strategy) Choose(_ nodeid.ID, candidates []nodeid.ID) nodeid.ID {
	best, bestDist := candidates[0], s.hops(candidates[0])
	for _, c := range candidates[1:] {
		if d := s.hops(c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// hops returns the distance from id to the goal, or math.MaxInt when the
// goal cannot be reached from id.
func (s *Strategy) hops(id nodeid.ID) int {
	if d, ok := s.distance[id]; ok {
		return d
	}
	return math.MaxInt
}

// distancesTo runs a BFS from goal over reversed routes.
func distancesTo(ctx context.Context, graph topologystore.Store, goal nodeid.ID) (map[nodeid.ID]int, error) {
	if !graph.Has(ctx, goal) {
		return nil, fmt.Errorf("%w: goal city '%s' is not on the map", agent.ErrInvalidIdentifier, goal)
	}

	distance := map[nodeid.ID]int{goal: 0}
	queue := linkedlistqueue.New()
	queue.Enqueue(goal)

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		city := v.(nodeid.ID)

		preds, err := graph.Predecessors(ctx, city)
		if err != nil {
			return nil, err
		}
		for _, p := range preds {
			if _, seen := distance[p]; seen {
				continue
			}
			distance[p] = distance[city] + 1
			queue.Enqueue(p)
		}
	}
	return distance, nil
}
