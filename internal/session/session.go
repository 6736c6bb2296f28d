// Package session turns a walk request, as typed by a user or sent by a live
// client, into a validated agent walk against a shared map.
//
// The CLI, declared trips and the live server all go through a Session:
// they hand it a plain Request and get back an agent.Result. A Session is
// safe for concurrent use; the map is read-only and every walk owns its
// path and visited set.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/registry"
	"github.com/vk/goalwalker/internal/topologystore"
)

// Rejection reasons reported to the Recorder.
const (
	RejectInvalidIdentifier = "invalid_identifier"
	RejectUnknownStrategy   = "unknown_strategy"
	RejectStrategyError     = "strategy_error"
)

// Request is a single walk request in raw, unvalidated form.
type Request struct {
	Start    string `json:"start"`
	Goal     string `json:"goal"`
	Strategy string `json:"strategy,omitempty"`
}

// Recorder receives the outcome of every request.
type Recorder interface {
	ObserveWalk(res *agent.Result, elapsed time.Duration)
	ObserveRejected(reason string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveWalk(*agent.Result, time.Duration) {}
func (nopRecorder) ObserveRejected(string)                   {}

// Session binds a map to the strategies that can walk it.
type Session struct {
	graph           topologystore.Store
	registry        *registry.Registry
	recorder        Recorder
	defaultStrategy string
}

// New creates a session. A nil recorder disables recording; an empty
// defaultStrategy means agent.DefaultStrategyName.
func New(graph topologystore.Store, reg *registry.Registry, recorder Recorder, defaultStrategy string) *Session {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if defaultStrategy == "" {
		defaultStrategy = agent.DefaultStrategyName
	}
	return &Session{
		graph:           graph,
		registry:        reg,
		recorder:        recorder,
		defaultStrategy: defaultStrategy,
	}
}

// Graph returns the map this session walks.
func (s *Session) Graph() topologystore.Store {
	return s.graph
}

// Strategies returns the names a Request may use.
func (s *Session) Strategies() []string {
	return s.registry.Names()
}

// Walk validates req, builds its strategy and runs the walk. Extra options
// are applied after the strategy, e.g. agent.WithObserver.
func (s *Session) Walk(ctx context.Context, req Request, opts ...agent.Option) (*agent.Result, error) {
	logger := ctxlog.FromContext(ctx)

	start, err := nodeid.Parse(req.Start)
	if err != nil {
		s.recorder.ObserveRejected(RejectInvalidIdentifier)
		return nil, fmt.Errorf("%w: start: %w", agent.ErrInvalidIdentifier, err)
	}
	goal, err := nodeid.Parse(req.Goal)
	if err != nil {
		s.recorder.ObserveRejected(RejectInvalidIdentifier)
		return nil, fmt.Errorf("%w: goal: %w", agent.ErrInvalidIdentifier, err)
	}

	name := req.Strategy
	if name == "" {
		name = s.defaultStrategy
	}
	factory, err := s.registry.Lookup(name)
	if err != nil {
		s.recorder.ObserveRejected(RejectUnknownStrategy)
		return nil, err
	}
	strategy, err := factory(ctx, s.graph, goal)
	if err != nil {
		if errors.Is(err, agent.ErrInvalidIdentifier) {
			s.recorder.ObserveRejected(RejectInvalidIdentifier)
		} else {
			s.recorder.ObserveRejected(RejectStrategyError)
		}
		return nil, fmt.Errorf("preparing strategy '%s': %w", name, err)
	}

	began := time.Now()
	walkOpts := append([]agent.Option{agent.WithStrategy(name, strategy)}, opts...)
	res, err := agent.Walk(ctx, s.graph, start, goal, walkOpts...)
	if err != nil {
		if errors.Is(err, agent.ErrInvalidIdentifier) {
			s.recorder.ObserveRejected(RejectInvalidIdentifier)
		} else {
			s.recorder.ObserveRejected(RejectStrategyError)
		}
		return nil, err
	}

	s.recorder.ObserveWalk(res, time.Since(began))
	logger.Debug("Session walk finished.", "start", start, "goal", goal, "strategy", name, "status", res.Status.String())
	return res, nil
}
