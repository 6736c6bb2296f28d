// Package agent implements the goal-seeking walker: an agent that moves
// through the city map one route at a time until it reaches its goal or
// runs out of unvisited neighbors.
//
// The walker's control structure is fixed. What varies is the Strategy, the
// rule that picks one move out of the unvisited neighbors of the current
// city. FirstAvailable, the default, always takes the first candidate in
// stored neighbor order, gives no optimality guarantee and never backtracks.
//
// A walk that cannot continue is not an error. Walk returns a Result whose
// Status is StatusStuck and whose Path is the partial route taken so far.
// Errors are reserved for invalid input (ErrInvalidIdentifier) and
// misbehaving strategies (ErrBadChoice).
package agent
