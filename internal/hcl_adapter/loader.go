package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL map loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file found under the given paths and merges them
// into one model. A trip declared twice, even across files, is an error;
// duplicate cities are left to the builder.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	var files []*hcl.File
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		files = append(files, hclFile)
	}

	return l.decodeFiles(ctx, files)
}

// LoadSource parses a single in-memory HCL document. filename is used only
// for diagnostics.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decodeFiles(ctx, []*hcl.File{hclFile})
}

func (l *Loader) decodeFiles(ctx context.Context, files []*hcl.File) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}
	seenTrips := make(map[string]string)

	for _, hclFile := range files {
		var root fileRoot
		diags := gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %w", diags)
		}

		for _, c := range root.Cities {
			source := c.Neighbors.Range().String()
			city, err := l.translateCity(ctx, c, source)
			if err != nil {
				return nil, err
			}
			model.Cities = append(model.Cities, city)
		}
		for _, t := range root.Trips {
			if _, dup := seenTrips[t.Name]; dup {
				return nil, fmt.Errorf("trip '%s' is declared more than once", t.Name)
			}
			seenTrips[t.Name] = t.Name
			model.Trips = append(model.Trips, l.translateTrip(t, t.Name))
		}
	}

	logger.Debug("HCL loading complete.", "cities", len(model.Cities), "trips", len(model.Trips))
	return model, nil
}
