package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/goalwalker/internal/ctxlog"
)

// Loader is the interface for a format-specific map loader.
type Loader interface {
	// Load reads every given path (file or directory), translates it into
	// the format-agnostic model and returns the merged result.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// ByExtension dispatches each path to the Loader registered for its file
// extension (".hcl", ".yaml", ...). Directories, whatever their name, and
// paths without an extension are offered to every loader, each of which
// picks up only its own files.
type ByExtension map[string]Loader

// Load implements Loader. Models are merged in path order.
func (b ByExtension) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &Model{}

	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == "" || isDir(path) {
			logger.Debug("Path is a directory, offering it to every loader.", "path", path)
			for _, key := range b.extensions() {
				m, err := b[key].Load(ctx, path)
				if err != nil {
					return nil, err
				}
				model.Merge(m)
			}
			continue
		}

		loader, ok := b[ext]
		if !ok {
			return nil, fmt.Errorf("unsupported map file %s: extension must be one of %s", path, strings.Join(b.extensions(), ", "))
		}
		m, err := loader.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}
	return model, nil
}

// isDir reports whether path is an existing directory. Missing paths are left
// to the loaders, which report them.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// extensions returns the registered extensions in a stable order, skipping
// aliases that point to an already-listed loader.
func (b ByExtension) extensions() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	seen := make(map[Loader]bool)
	for _, k := range keys {
		if seen[b[k]] {
			continue
		}
		seen[b[k]] = true
		out = append(out, k)
	}
	return out
}
