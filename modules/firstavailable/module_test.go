package firstavailable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/registry"
	"github.com/vk/goalwalker/internal/testutil"
)

func TestModule_WalksFirstNeighbor(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	factory, err := r.Lookup("first")
	require.NoError(t, err)

	store := testutil.ReferenceStore(t)
	strategy, err := factory(context.Background(), store, "F")
	require.NoError(t, err)

	res, err := agent.Walk(context.Background(), store, "A", "F", agent.WithStrategy("first", strategy))
	require.NoError(t, err)
	assert.Equal(t, nodeid.Path(nodeid.IDs("A", "B", "D")), res.Path)
	assert.Equal(t, agent.StatusStuck, res.Status)
}
