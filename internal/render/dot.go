package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/topologystore"
)

// DOT renders the whole map as an undirected Graphviz graph. A route listed
// in both directions is drawn once. Cities on the path are filled orange;
// routes the agent took, in either direction, are drawn red and bold.
type DOT struct{}

// route is an unordered pair of cities.
type route [2]nodeid.ID

func newRoute(a, b nodeid.ID) route {
	if b < a {
		a, b = b, a
	}
	return route{a, b}
}

// Render implements Renderer.
func (DOT) Render(ctx context.Context, w io.Writer, graph topologystore.Store, res *agent.Result) error {
	onPath := make(map[nodeid.ID]bool, len(res.Path))
	for _, id := range res.Path {
		onPath[id] = true
	}
	walked := make(map[route]bool, len(res.Path))
	for _, e := range res.Path.Edges() {
		walked[newRoute(e[0], e[1])] = true
	}

	var b strings.Builder
	b.WriteString("graph goalwalker {\n")
	b.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&b, "  label=%q;\n", fmt.Sprintf("%s to %s (%s)", res.Start, res.Goal, res.Status))

	cities := graph.Cities(ctx)
	for _, id := range cities {
		if onPath[id] {
			fmt.Fprintf(&b, "  %q [style=filled, fillcolor=orange];\n", id)
		} else {
			fmt.Fprintf(&b, "  %q;\n", id)
		}
	}

	drawn := make(map[route]bool)
	for _, from := range cities {
		neighbors, err := graph.Neighbors(ctx, from)
		if err != nil {
			return fmt.Errorf("rendering routes of city '%s': %w", from, err)
		}
		for _, to := range neighbors {
			r := newRoute(from, to)
			if drawn[r] {
				continue
			}
			drawn[r] = true
			if walked[r] {
				fmt.Fprintf(&b, "  %q -- %q [color=red, style=bold];\n", from, to)
			} else {
				fmt.Fprintf(&b, "  %q -- %q;\n", from, to)
			}
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
