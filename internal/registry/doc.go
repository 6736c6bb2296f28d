// Package registry provides the central "glue" for the strategy module
// system.
//
// The Registry maps the names used on the command line, in trip blocks and
// in live requests (e.g. "first", "nearest") to the compiled Go factories
// that build an agent.Strategy for a particular map and goal. Modules under
// modules/ register themselves at application startup.
//
// During startup the registry is validated against the trips declared in the
// loaded map, so a trip naming an unknown strategy fails before any walk.
package registry
