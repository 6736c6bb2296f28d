package cli_behavior

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/app"
	"github.com/vk/goalwalker/internal/integration_tests"
	"github.com/vk/goalwalker/internal/testutil"
)

// TestCLI_MergesMaps_FromDirectoryPath validates that the loaders discover
// and merge every map file below a directory, whatever its format.
func TestCLI_MergesMaps_FromDirectoryPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"north/cities.hcl": `
			city "Oslo" {
				neighbors = ["Bergen"]
			}
		`,
		"west/cities.yaml": "cities:\n  - name: Bergen\n    neighbors: [Oslo, Stavanger]\n  - name: Stavanger\n",
		"README.txt":       "ignored",
	}

	// --- Act ---
	result := integration_tests.RunIntegrationTest(t, files, app.Config{Start: "Oslo", Goal: "Stavanger", Output: "json"})

	// --- Assert ---
	require.NoError(t, result.Err, "app.Run() returned an unexpected error")

	var doc struct {
		Status string   `json:"status"`
		Path   []string `json:"path"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc))
	assert.Equal(t, "reached", doc.Status)
	assert.Equal(t, []string{"Oslo", "Bergen", "Stavanger"}, doc.Path)
}

// TestCLI_LoadsMaps_FromDottedDirectory validates that a directory whose
// name has an extension is still searched for map files.
func TestCLI_LoadsMaps_FromDottedDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"maps.d/cities.hcl": `
			city "Oslo" {
				neighbors = ["Bergen"]
			}
			city "Bergen" {}
		`,
	})

	// --- Act ---
	result := integration_tests.RunIntegrationTest(t, nil, app.Config{
		MapPaths: []string{filepath.Join(dir, "maps.d")},
		Start:    "Oslo",
		Goal:     "Bergen",
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "Path walked by the agent: Oslo -> Bergen")
}

// TestCLI_BuiltinMap_WhenNoPathGiven validates that the app falls back to
// the embedded reference map and its trips.
func TestCLI_BuiltinMap_WhenNoPathGiven(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := integration_tests.RunIntegrationTest(t, nil, app.Config{Trip: "a_to_f"})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t,
		"Trip a_to_f\nPath walked by the agent: A -> B -> D\nNo route available from city D; goal F not reached.\n1. A\n2. B\n3. D\n",
		result.Output)
}
