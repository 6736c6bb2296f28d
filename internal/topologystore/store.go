// Package topologystore defines the interface for storing and retrieving the
// static structure of the city map: which cities exist and, for each city,
// the ordered list of cities reachable from it in one move.
//
// # Lifecycle and Usage
//
// The topology store is:
//  1. **Created** once per application instance (ephemeral, never persisted)
//  2. **Populated** by internal/builder from the loaded config model
//  3. **Read-only** while agents walk the map
//
// Neighbor order is significant. The default decision strategy always takes
// the first unvisited neighbor, so implementations MUST return neighbors in
// exactly the order they were added.
package topologystore

import (
	"context"
	"errors"

	"github.com/vk/goalwalker/internal/nodeid"
)

// ErrUnknownCity is wrapped by lookups for a city that is not in the store.
var ErrUnknownCity = errors.New("unknown city")

// Store is the interface for managing the static topology of the city map.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent use. The live server walks the
// same store from many goroutines at once.
type Store interface {
	// AddCity registers a city. Adding the same city twice is a no-op.
	AddCity(ctx context.Context, id nodeid.ID) error

	// AddRoute appends 'to' to the neighbor list of 'from'.
	//
	// Both cities must already exist. Adding a route that is already present
	// is a no-op, so the first occurrence fixes the neighbor's position.
	AddRoute(ctx context.Context, from, to nodeid.ID) error

	// Neighbors returns a copy of the ordered neighbor list of id. Returns an
	// error wrapping ErrUnknownCity if id is not in the store.
	Neighbors(ctx context.Context, id nodeid.ID) ([]nodeid.ID, error)

	// Predecessors returns every city that lists id as a neighbor, in city
	// insertion order. Returns an error wrapping ErrUnknownCity if id is not
	// in the store.
	Predecessors(ctx context.Context, id nodeid.ID) ([]nodeid.ID, error)

	// Has reports whether id is a known city.
	Has(ctx context.Context, id nodeid.ID) bool

	// Cities returns all cities in insertion order.
	Cities(ctx context.Context) []nodeid.ID
}
