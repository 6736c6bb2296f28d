// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// idRegex matches a single city token, e.g. `A` or `new_york-2`.
var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidName checks for undesirable but technically matching names.
func isValidName(name string) bool {
	return strings.Trim(name, "-_") != ""
}

// Parse validates raw and returns it as an ID. Surrounding whitespace is
// not trimmed: " A" is rejected rather than silently accepted.
func Parse(raw string) (ID, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: identifier cannot be empty", ErrInvalid)
	}
	if !idRegex.MatchString(raw) {
		return "", fmt.Errorf("%w: %q contains characters outside [a-zA-Z0-9_-]", ErrInvalid, raw)
	}
	if !isValidName(raw) {
		return "", fmt.Errorf("%w: %q has no letters or digits", ErrInvalid, raw)
	}
	return ID(raw), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// compiled-in fixtures.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}
