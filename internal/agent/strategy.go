package agent

import "github.com/vk/goalwalker/internal/nodeid"

// DefaultStrategyName is the registry name of FirstAvailable.
const DefaultStrategyName = "first"

// Strategy picks the next city from the unvisited neighbors of the current
// one. candidates is never empty and is in stored neighbor order. The
// returned city must be one of the candidates.
type Strategy interface {
	Choose(current nodeid.ID, candidates []nodeid.ID) nodeid.ID
}

// StrategyFunc adapts an ordinary function to the Strategy interface.
type StrategyFunc func(current nodeid.ID, candidates []nodeid.ID) nodeid.ID

// Choose implements Strategy.
func (f StrategyFunc) Choose(current nodeid.ID, candidates []nodeid.ID) nodeid.ID {
	return f(current, candidates)
}

// FirstAvailable always moves to the first unvisited neighbor.
var FirstAvailable Strategy = StrategyFunc(func(_ nodeid.ID, candidates []nodeid.ID) nodeid.ID {
	return candidates[0]
})
