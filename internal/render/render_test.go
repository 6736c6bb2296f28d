package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/testutil"
)

func reached() *agent.Result {
	return &agent.Result{
		Start: "A", Goal: "D", Strategy: "first",
		Status: agent.StatusReached,
		Path:   nodeid.IDs("A", "B", "D"),
	}
}

func stuck() *agent.Result {
	return &agent.Result{
		Start: "A", Goal: "F", Strategy: "first",
		Status: agent.StatusStuck,
		Path:   nodeid.IDs("A", "B", "D"),
	}
}

func TestArrow(t *testing.T) {
	assert.Equal(t, "A -> B -> D", Arrow(nodeid.IDs("A", "B", "D")))
	assert.Equal(t, "A", Arrow(nodeid.IDs("A")))
	assert.Equal(t, "", Arrow(nil))
}

func TestByName(t *testing.T) {
	for _, name := range Formats {
		r, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, r)
	}

	_, err := ByName("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, dot, json")
}

func TestText_Reached(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text{}.Render(context.Background(), &buf, nil, reached()))

	want := "Path walked by the agent: A -> B -> D\n1. A\n2. B\n3. D\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestText_Stuck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text{}.Render(context.Background(), &buf, nil, stuck()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Path walked by the agent: A -> B -> D", lines[0])
	assert.Equal(t, "No route available from city D; goal F not reached.", lines[1])
	assert.Equal(t, "3. D", lines[4])
}

func TestText_StartIsGoal(t *testing.T) {
	var buf bytes.Buffer
	res := &agent.Result{Start: "C", Goal: "C", Status: agent.StatusReached, Path: nodeid.IDs("C")}
	require.NoError(t, Text{}.Render(context.Background(), &buf, nil, res))

	assert.Equal(t, "Path walked by the agent: C\n1. C\n", buf.String())
}

func TestDOT_HighlightsPath(t *testing.T) {
	store := testutil.ReferenceStore(t)
	var buf bytes.Buffer
	require.NoError(t, DOT{}.Render(context.Background(), &buf, store, reached()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph goalwalker {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.NotContains(t, out, "->")
	assert.Contains(t, out, `"A" [style=filled, fillcolor=orange];`)
	assert.Contains(t, out, `"D" [style=filled, fillcolor=orange];`)
	assert.Contains(t, out, "  \"F\";\n")
	assert.Contains(t, out, `"A" -- "B" [color=red, style=bold];`)
	assert.Contains(t, out, `"B" -- "D" [color=red, style=bold];`)
	assert.Contains(t, out, "  \"A\" -- \"C\";\n")
	assert.Equal(t, 2, strings.Count(out, "color=red"))
}

func TestDOT_DrawsEachRouteOnce(t *testing.T) {
	store := testutil.ReferenceStore(t)
	res := &agent.Result{Start: "D", Goal: "A", Status: agent.StatusReached, Path: nodeid.IDs("D", "B", "A")}
	var buf bytes.Buffer
	require.NoError(t, DOT{}.Render(context.Background(), &buf, store, res))
	out := buf.String()

	// A-B A-C B-D B-E C-F E-F, each listed in both directions on the map.
	assert.Equal(t, 6, strings.Count(out, " -- "))
	assert.NotContains(t, out, `"B" -- "A"`)
	assert.Contains(t, out, `"A" -- "B" [color=red, style=bold];`)
	assert.Contains(t, out, `"B" -- "D" [color=red, style=bold];`)
}

func TestJSON_Document(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Render(context.Background(), &buf, nil, stuck()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := map[string]any{
		"start":    "A",
		"goal":     "F",
		"status":   "stuck",
		"strategy": "first",
		"path":     []any{"A", "B", "D"},
		"steps": []any{
			map[string]any{"position": float64(1), "city": "A"},
			map[string]any{"position": float64(2), "city": "B"},
			map[string]any{"position": float64(3), "city": "D"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json document mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_Indent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{Indent: "  "}.Render(context.Background(), &buf, nil, reached()))
	assert.Contains(t, buf.String(), "\n  \"start\": \"A\",\n")
}
