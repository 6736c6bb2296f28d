package error_handling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/app"
	"github.com/vk/goalwalker/internal/builder"
	"github.com/vk/goalwalker/internal/integration_tests"
	"github.com/vk/goalwalker/internal/topologystore"
)

// TestErrorHandling_InvalidHCL_IsRejected checks that a syntax error stops
// the app before any walk happens.
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			city "A" {
				neighbors = ["B"
		`,
	}

	// --- Act ---
	result := integration_tests.RunIntegrationTest(t, files, app.Config{Start: "A", Goal: "A"})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Nil(t, result.App)
	assert.Contains(t, result.Err.Error(), "failed to parse")
	assert.Empty(t, result.Output)
}

// TestErrorHandling_UnknownNeighbor_IsRejected checks the map invariant that
// every neighbor is itself a declared city.
func TestErrorHandling_UnknownNeighbor_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"a.hcl": `city "A" { neighbors = ["B"] }`,
		"b.hcl": `city "B" { neighbors = ["Q"] }`,
	}

	// --- Act ---
	result := integration_tests.RunIntegrationTest(t, files, app.Config{Start: "A", Goal: "B"})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, topologystore.ErrUnknownCity)
	assert.Contains(t, result.Err.Error(), "'Q'")
}

// TestErrorHandling_DuplicateCity_IsRejected checks that a city cannot be
// declared twice, even across files.
func TestErrorHandling_DuplicateCity_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"a.hcl": `city "A" {}`,
		"b.hcl": `city "A" {}`,
	}

	// --- Act ---
	result := integration_tests.RunIntegrationTest(t, files, app.Config{Start: "A", Goal: "A"})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, builder.ErrDuplicateCity)
}

// TestErrorHandling_DuplicateCityAcrossFormats_IsRejected checks that the
// same rule holds for YAML files and for a mix of formats.
func TestErrorHandling_DuplicateCityAcrossFormats_IsRejected(t *testing.T) {
	t.Parallel()

	testCases := map[string]map[string]string{
		"yaml only": {
			"a.yaml": "cities:\n  - name: A\n  - name: A\n",
		},
		"hcl and yaml": {
			"a.hcl":  `city "A" {}`,
			"b.yaml": "cities:\n  - name: A\n",
		},
	}

	for name, files := range testCases {
		t.Run(name, func(t *testing.T) {
			// --- Act ---
			result := integration_tests.RunIntegrationTest(t, files, app.Config{Start: "A", Goal: "A"})

			// --- Assert ---
			require.Error(t, result.Err)
			assert.ErrorIs(t, result.Err, builder.ErrDuplicateCity)
			assert.Contains(t, result.Err.Error(), "city 'A'")
		})
	}
}

// TestErrorHandling_UnknownStart_FailsFast checks that an identifier missing
// from the map is an error and not a walk.
func TestErrorHandling_UnknownStart_FailsFast(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := integration_tests.RunIntegrationTest(t, nil, app.Config{Start: "Z", Goal: "A"})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, agent.ErrInvalidIdentifier)
	assert.NotContains(t, result.Output, "Path walked by the agent")
}

// TestErrorHandling_TripToUnknownCity_IsRejected checks that trips are
// validated at load time, not when they run.
func TestErrorHandling_TripToUnknownCity_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"map.yml": "cities:\n  - name: A\ntrips:\n  - name: lost\n    start: A\n    goal: Atlantis\n",
	}

	// --- Act ---
	result := integration_tests.RunIntegrationTest(t, files, app.Config{})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "trip 'lost'")
	assert.Nil(t, result.App)
}
