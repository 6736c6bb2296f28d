package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/topologystore"
)

// ErrUnknownStrategy is wrapped by Lookup for names nobody registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Module is the interface that all strategy modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory builds a Strategy for one walk toward goal on graph. Strategies
// that need no preparation can ignore every argument.
type Factory func(ctx context.Context, graph topologystore.Store, goal nodeid.ID) (agent.Strategy, error)

// Registry holds all the registered strategy factories for a single
// application instance.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// RegisterStrategy registers a factory under name. Registering the same name
// twice is a programmer error and panics.
func (r *Registry) RegisterStrategy(name string, f Factory) {
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("strategy with name '%s' already registered", name))
	}
	r.factories[name] = f
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w '%s': available strategies are %s", ErrUnknownStrategy, name, strings.Join(r.Names(), ", "))
	}
	return f, nil
}

// Names returns all registered strategy names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateTrips checks that every trip names a registered strategy. Empty
// strategy names are allowed; they mean the application default.
func (r *Registry) ValidateTrips(ctx context.Context, trips []*config.Trip) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string
	for _, t := range trips {
		if t.Strategy == "" {
			continue
		}
		if _, err := r.Lookup(t.Strategy); err != nil {
			errs = append(errs, fmt.Sprintf("trip '%s': %v", t.Name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "strategies", r.Names())
	return nil
}
