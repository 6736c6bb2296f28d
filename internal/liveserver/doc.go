// Package liveserver exposes walks over socket.io.
//
// A client emits "walk" with {start, goal, strategy}. Every request gets a
// fresh request id and is answered with one "step" event per city as the
// agent moves, followed by exactly one terminal event: "result" with the
// full walk document, or "walk_error" when the request was rejected.
// Events are emitted in order, but clients that dispatch packets
// concurrently should order steps by their position field.
//
// Requests are independent: each runs its own walk against the shared,
// read-only map held by the session.
package liveserver
