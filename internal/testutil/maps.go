// Package testutil holds fixtures shared by package tests: the reference
// six-city map, ad-hoc maps and a goroutine-safe log buffer.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/builder"
	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/hcl_adapter"
	"github.com/vk/goalwalker/internal/inmemorytopology"
)

// Edge is one city with its ordered neighbor list, used to describe
// ad-hoc maps in declaration order.
type Edge struct {
	City      string
	Neighbors []string
}

// ReferenceStore returns the builtin six-city map:
//
//	A: [B C]  B: [A D E]  C: [A F]  D: [B]  E: [B F]  F: [C E]
func ReferenceStore(t *testing.T) *inmemorytopology.Store {
	t.Helper()
	ctx := context.Background()

	model, err := hcl_adapter.Builtin(ctx)
	require.NoError(t, err)

	store := inmemorytopology.New()
	require.NoError(t, builder.Build(ctx, model, store))
	return store
}

// NewStore builds a store from cities given in declaration order.
func NewStore(t *testing.T, cities ...Edge) *inmemorytopology.Store {
	t.Helper()

	model := &config.Model{}
	for _, c := range cities {
		model.Cities = append(model.Cities, &config.City{Name: c.City, Neighbors: c.Neighbors, Source: "test"})
	}

	store := inmemorytopology.New()
	require.NoError(t, builder.Build(context.Background(), model, store))
	return store
}

// WriteFiles writes name->content pairs below a fresh temp directory and
// returns the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}
