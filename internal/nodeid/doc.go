// internal/nodeid/doc.go

/*
Package nodeid provides a type-safe representation for city identifiers
within the map, together with the Path type that records the cities an
agent walked through.

An identifier is a single token made of letters, digits, '_' and '-',
e.g. `A`, `porto_alegre` or `city-42`. This package enforces the
identifier schema and centralizes parsing and formatting logic.
*/
package nodeid
