// Package inmemorytopology provides a thread-safe, in-memory implementation
// of the topologystore.Store interface. It is designed for maps that fit
// comfortably in memory and do not need persistent storage.
package inmemorytopology
