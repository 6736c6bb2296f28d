package inmemorytopology

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/topologystore"
)

// Store implements the topologystore.Store interface using maps, an order
// slice and a mutex for thread-safe concurrent access.
type Store struct {
	mu        sync.RWMutex
	order     []nodeid.ID
	neighbors map[nodeid.ID][]nodeid.ID
}

// New creates a new, empty in-memory topology store.
func New() *Store {
	return &Store{
		neighbors: make(map[nodeid.ID][]nodeid.ID),
	}
}

var _ topologystore.Store = (*Store)(nil)

// AddCity registers a city. Adding it twice is idempotent.
func (s *Store) AddCity(ctx context.Context, id nodeid.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.neighbors[id]; exists {
		return nil
	}
	s.neighbors[id] = []nodeid.ID{}
	s.order = append(s.order, id)
	return nil
}

// AddRoute appends a route from one city to another.
func (s *Store) AddRoute(ctx context.Context, from, to nodeid.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, exists := s.neighbors[from]
	if !exists {
		return fmt.Errorf("route source city '%s': %w", from, topologystore.ErrUnknownCity)
	}
	if _, exists := s.neighbors[to]; !exists {
		return fmt.Errorf("route target city '%s' (from '%s'): %w", to, from, topologystore.ErrUnknownCity)
	}

	if slices.Contains(list, to) {
		return nil
	}
	s.neighbors[from] = append(list, to)
	return nil
}

// Neighbors returns the ordered neighbors of a city.
func (s *Store) Neighbors(ctx context.Context, id nodeid.ID) ([]nodeid.ID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.neighbors[id]
	if !ok {
		return nil, fmt.Errorf("city '%s': %w", id, topologystore.ErrUnknownCity)
	}
	return slices.Clone(list), nil
}

// Predecessors returns the cities that have a route to id.
func (s *Store) Predecessors(ctx context.Context, id nodeid.ID) ([]nodeid.ID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.neighbors[id]; !ok {
		return nil, fmt.Errorf("city '%s': %w", id, topologystore.ErrUnknownCity)
	}

	preds := []nodeid.ID{}
	for _, city := range s.order {
		if slices.Contains(s.neighbors[city], id) {
			preds = append(preds, city)
		}
	}
	return preds, nil
}

// Has reports whether a city is known.
func (s *Store) Has(ctx context.Context, id nodeid.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.neighbors[id]
	return ok
}

// Cities returns all cities in insertion order.
func (s *Store) Cities(ctx context.Context) []nodeid.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.order)
}
