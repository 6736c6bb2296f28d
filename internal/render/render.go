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

// Renderer writes one walk result to w.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, graph topologystore.Store, res *agent.Result) error
}

// Output format names accepted by ByName.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Formats lists every name ByName understands.
var Formats = []string{FormatText, FormatDOT, FormatJSON}

// ByName returns the renderer for an output format.
func ByName(name string) (Renderer, error) {
	switch name {
	case FormatText:
		return Text{}, nil
	case FormatDOT:
		return DOT{}, nil
	case FormatJSON:
		return JSON{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unknown output format '%s': must be one of %s", name, strings.Join(Formats, ", "))
	}
}

// Arrow joins a path as "A -> B -> D". An empty path renders as "".
func Arrow(path nodeid.Path) string {
	return path.String()
}
