// Package builder turns a format-agnostic config.Model into a populated
// topologystore.Store.
//
// Building happens in two passes, like a dependency graph: first every city
// is registered, then every route is linked. The second pass is where the
// map invariant is enforced: each neighbor must itself be a declared city.
// Identifiers are validated with nodeid.Parse so that a typo in a map file
// fails at startup with the file location rather than later in a walk.
package builder
