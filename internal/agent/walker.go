package agent

import (
	"context"
	"fmt"
	"slices"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/topologystore"
)

// Option configures a single walk.
type Option func(*walkOptions)

type walkOptions struct {
	strategy     Strategy
	strategyName string
	observer     func(Step)
}

// WithStrategy replaces FirstAvailable. name is recorded in the Result.
func WithStrategy(name string, s Strategy) Option {
	return func(o *walkOptions) {
		o.strategy = s
		o.strategyName = name
	}
}

// WithObserver registers fn to be called synchronously for every city
// appended to the path, starting with the start city.
func WithObserver(fn func(Step)) Option {
	return func(o *walkOptions) {
		o.observer = fn
	}
}

// Walk moves from start toward goal until the goal is reached or no
// unvisited neighbor is left. The loop runs at most once per city because
// every iteration marks the current city visited.
func Walk(ctx context.Context, graph topologystore.Store, start, goal nodeid.ID, opts ...Option) (*Result, error) {
	o := walkOptions{strategy: FirstAvailable, strategyName: DefaultStrategyName}
	for _, opt := range opts {
		opt(&o)
	}
	logger := ctxlog.FromContext(ctx).With("start", start, "goal", goal, "strategy", o.strategyName)

	if !graph.Has(ctx, start) {
		return nil, fmt.Errorf("%w: start city '%s' is not on the map", ErrInvalidIdentifier, start)
	}
	if !graph.Has(ctx, goal) {
		return nil, fmt.Errorf("%w: goal city '%s' is not on the map", ErrInvalidIdentifier, goal)
	}

	res := &Result{
		Start:    start,
		Goal:     goal,
		Strategy: o.strategyName,
		Path:     nodeid.Path{start},
	}
	o.notify(res)

	current := start
	visited := hashset.New()
	for current != goal {
		visited.Add(current)

		neighbors, err := graph.Neighbors(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
		}
		candidates := make([]nodeid.ID, 0, len(neighbors))
		for _, n := range neighbors {
			if !visited.Contains(n) {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			res.Status = StatusStuck
			logger.Warn("No route available from the current city.", "city", current, "path", res.Path.String())
			return res, nil
		}

		next := o.strategy.Choose(current, candidates)
		if !slices.Contains(candidates, next) {
			return nil, fmt.Errorf("%w: %q picked '%s' at '%s', candidates were %v", ErrBadChoice, o.strategyName, next, current, candidates)
		}
		logger.Debug("Agent moved.", "from", current, "to", next, "candidates", candidates)

		current = next
		res.Path = append(res.Path, current)
		o.notify(res)
	}

	res.Status = StatusReached
	logger.Info("Goal reached.", "path", res.Path.String(), "length", len(res.Path))
	return res, nil
}

func (o *walkOptions) notify(res *Result) {
	if o.observer == nil {
		return
	}
	o.observer(Step{Position: len(res.Path), City: res.Path.Last()})
}
