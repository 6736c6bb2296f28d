package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/topologystore"
)

var (
	colorReached = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorMuted   = lipgloss.Color("#7A8B91")
)

// Text is the human-readable renderer. Styling is decided per writer, so
// pipes and files get plain text.
type Text struct{}

// Render implements Renderer.
func (Text) Render(_ context.Context, w io.Writer, _ topologystore.Store, res *agent.Result) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	pathStyle := r.NewStyle().Foreground(colorReached)
	warn := r.NewStyle().Foreground(colorWarning)
	position := r.NewStyle().Foreground(colorMuted)
	if !res.Reached() {
		pathStyle = pathStyle.Foreground(colorWarning)
	}

	var b strings.Builder
	b.WriteString(title.Render("Path walked by the agent:"))
	b.WriteString(" ")
	b.WriteString(pathStyle.Render(Arrow(res.Path)))
	b.WriteString("\n")

	if !res.Reached() {
		msg := fmt.Sprintf("No route available from city %s; goal %s not reached.", res.Path.Last(), res.Goal)
		b.WriteString(warn.Render(msg))
		b.WriteString("\n")
	}

	for _, step := range res.Steps() {
		b.WriteString(position.Render(fmt.Sprintf("%d.", step.Position)))
		b.WriteString(" ")
		b.WriteString(step.City.String())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
