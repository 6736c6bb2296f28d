// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// An App owns one loaded map, the strategies registered against it and the
// metrics recorder. Run decides, from Config, whether to serve live walks,
// perform a single walk or replay the trips declared with the map.
package app
