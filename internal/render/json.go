package render

import (
	"context"
	"encoding/json"
	"io"

	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/topologystore"
)

// Document is the machine-readable form of a Result.
type Document struct {
	Start    nodeid.ID    `json:"start"`
	Goal     nodeid.ID    `json:"goal"`
	Status   agent.Status `json:"status"`
	Strategy string       `json:"strategy"`
	Path     []nodeid.ID  `json:"path"`
	Steps    []agent.Step `json:"steps"`
}

// NewDocument converts res.
func NewDocument(res *agent.Result) Document {
	path := res.Path
	if path == nil {
		path = nodeid.Path{}
	}
	return Document{
		Start:    res.Start,
		Goal:     res.Goal,
		Status:   res.Status,
		Strategy: res.Strategy,
		Path:     path,
		Steps:    res.Steps(),
	}
}

// JSON writes one Document per result, newline terminated.
type JSON struct {
	Indent string
}

// Render implements Renderer.
func (j JSON) Render(_ context.Context, w io.Writer, _ topologystore.Store, res *agent.Result) error {
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(NewDocument(res))
}
