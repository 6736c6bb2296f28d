package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/inmemorytopology"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/topologystore"
)

func TestBuild_Success(t *testing.T) {
	ctx := context.Background()
	model := &config.Model{
		Cities: []*config.City{
			{Name: "A", Neighbors: []string{"B", "C"}},
			{Name: "B", Neighbors: []string{"A"}},
			{Name: "C", Neighbors: []string{}},
		},
		Trips: []*config.Trip{{Name: "t", Start: "A", Goal: "C"}},
	}
	store := inmemorytopology.New()

	require.NoError(t, Build(ctx, model, store))

	assert.Equal(t, nodeid.IDs("A", "B", "C"), store.Cities(ctx))
	neighbors, err := store.Neighbors(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, nodeid.IDs("B", "C"), neighbors)
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		model       *config.Model
		errIs       error
		errContains string
	}{
		{
			name:  "nil model",
			model: nil,
			errIs: ErrEmptyMap,
		},
		{
			name:  "no cities",
			model: &config.Model{},
			errIs: ErrEmptyMap,
		},
		{
			name:  "invalid city name",
			model: &config.Model{Cities: []*config.City{{Name: "a b", Source: "map.hcl:1"}}},
			errIs: nodeid.ErrInvalid,
		},
		{
			name: "city declared twice",
			model: &config.Model{Cities: []*config.City{
				{Name: "A", Neighbors: []string{"B"}, Source: "a.yaml:2"},
				{Name: "B", Source: "a.yaml:4"},
				{Name: "A", Source: "b.hcl:1,1-9"},
			}},
			errIs:       ErrDuplicateCity,
			errContains: "city 'A' at b.hcl:1,1-9, first declared at a.yaml:2",
		},
		{
			name: "neighbor is not a city",
			model: &config.Model{Cities: []*config.City{
				{Name: "A", Neighbors: []string{"Z"}, Source: "map.hcl:1"},
			}},
			errIs:       topologystore.ErrUnknownCity,
			errContains: "lists neighbor 'Z'",
		},
		{
			name: "invalid neighbor text",
			model: &config.Model{Cities: []*config.City{
				{Name: "A", Neighbors: []string{""}},
			}},
			errIs: nodeid.ErrInvalid,
		},
		{
			name: "trip with unknown goal",
			model: &config.Model{
				Cities: []*config.City{{Name: "A"}},
				Trips:  []*config.Trip{{Name: "t", Start: "A", Goal: "Z"}},
			},
			errIs:       topologystore.ErrUnknownCity,
			errContains: "trip 't' goal 'Z'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Build(context.Background(), tc.model, inmemorytopology.New())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
			if tc.errContains != "" {
				assert.ErrorContains(t, err, tc.errContains)
			}
		})
	}
}
