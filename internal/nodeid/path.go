// internal/nodeid/path.go
package nodeid

import "strings"

// PathSeparator joins cities when a path is printed.
const PathSeparator = " -> "

// Path is an ordered sequence of cities, starting with the start city.
type Path []ID

// String joins the path with PathSeparator, e.g. "A -> B -> D".
func (p Path) String() string {
	var sb strings.Builder
	for i, id := range p {
		if i > 0 {
			sb.WriteString(PathSeparator)
		}
		sb.WriteString(string(id))
	}
	return sb.String()
}

// Last returns the final city of the path, or "" for an empty path.
func (p Path) Last() ID {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Edges returns the consecutive (from, to) pairs of the path.
func (p Path) Edges() [][2]ID {
	if len(p) < 2 {
		return nil
	}
	edges := make([][2]ID, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		edges = append(edges, [2]ID{p[i-1], p[i]})
	}
	return edges
}
