// internal/nodeid/types.go
package nodeid

import "errors"

// ErrInvalid is wrapped by every error returned from Parse.
var ErrInvalid = errors.New("invalid city identifier")

// ID is the canonical identifier of a city in the map. IDs are comparable
// and are used directly as map keys.
type ID string

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// IDs converts a slice of raw strings to IDs without validation.
// Use Parse when the input comes from a user or a config file.
func IDs(raw ...string) []ID {
	out := make([]ID, len(raw))
	for i, r := range raw {
		out[i] = ID(r)
	}
	return out
}
