// Package config defines the format-agnostic model of a city map, along
// with the Loader interface for reading it from various sources.
//
// The `config.Model` is the single source of truth for internal/builder.
// Concrete loaders, such as for HCL and YAML, live in separate packages.
package config
