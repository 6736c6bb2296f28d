package agent

import (
	"errors"
	"fmt"

	"github.com/vk/goalwalker/internal/nodeid"
)

var (
	// ErrInvalidIdentifier is wrapped when a start, goal or neighbor is not
	// a city on the map.
	ErrInvalidIdentifier = errors.New("invalid city identifier")
	// ErrBadChoice is wrapped when a strategy returns a city that was not
	// among the candidates it was offered.
	ErrBadChoice = errors.New("strategy chose a city outside the candidates")
)

// Status is the terminal state of a walk.
type Status int

const (
	// StatusReached means the last city of the path is the goal.
	StatusReached Status = iota
	// StatusStuck means the walk stopped at a city with no unvisited neighbor.
	StatusStuck
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusReached:
		return "reached"
	case StatusStuck:
		return "stuck"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText lets Status appear as a string in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Step is one city of a path with its 1-based position.
type Step struct {
	Position int       `json:"position"`
	City     nodeid.ID `json:"city"`
}

// Result is the outcome of a single walk.
type Result struct {
	Start    nodeid.ID   `json:"start"`
	Goal     nodeid.ID   `json:"goal"`
	Strategy string      `json:"strategy"`
	Status   Status      `json:"status"`
	Path     nodeid.Path `json:"path"`
}

// Reached reports whether the walk ended at the goal.
func (r *Result) Reached() bool {
	return r.Status == StatusReached
}

// Steps enumerates the path with 1-based positions.
func (r *Result) Steps() []Step {
	steps := make([]Step, len(r.Path))
	for i, city := range r.Path {
		steps[i] = Step{Position: i + 1, City: city}
	}
	return steps
}
