// Package yaml_adapter implements config.Loader for YAML map files:
//
//	cities:
//	  - name: A
//	    neighbors: [B, C]
//	trips:
//	  - name: to_d
//	    start: A
//	    goal: D
//
// Cities are a sequence rather than a mapping so that declaration order
// survives decoding.
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// document is the on-disk schema.
type document struct {
	Cities []cityEntry `yaml:"cities"`
	Trips  []tripEntry `yaml:"trips"`
}

type cityEntry struct {
	Name      string   `yaml:"name"`
	Neighbors []string `yaml:"neighbors"`
	line      int
}

type tripEntry struct {
	Name     string `yaml:"name"`
	Start    string `yaml:"start"`
	Goal     string `yaml:"goal"`
	Strategy string `yaml:"strategy"`
}

// UnmarshalYAML records the source line for error messages.
func (c *cityEntry) UnmarshalYAML(node *yaml.Node) error {
	type plain cityEntry
	if err := node.Decode((*plain)(c)); err != nil {
		return err
	}
	c.line = node.Line
	return nil
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML map loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load decodes every .yaml/.yml file under the given paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	files, err := fsutil.FindFilesByExtension(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		m, err := l.LoadSource(ctx, file, src)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}
	return model, nil
}

// LoadSource decodes a single YAML document. Unknown keys are rejected.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	model := &config.Model{}
	for _, c := range doc.Cities {
		if c.Name == "" {
			return nil, fmt.Errorf("%s:%d: city is missing a name", filename, c.line)
		}
		neighbors := c.Neighbors
		if neighbors == nil {
			neighbors = []string{}
		}
		model.Cities = append(model.Cities, &config.City{
			Name:      c.Name,
			Neighbors: neighbors,
			Source:    fmt.Sprintf("%s:%d", filename, c.line),
		})
	}
	for _, t := range doc.Trips {
		if t.Name == "" || t.Start == "" || t.Goal == "" {
			return nil, fmt.Errorf("%s: trip entries need name, start and goal", filename)
		}
		model.Trips = append(model.Trips, &config.Trip{
			Name:     t.Name,
			Start:    t.Start,
			Goal:     t.Goal,
			Strategy: t.Strategy,
			Source:   filename,
		})
	}

	ctxlog.FromContext(ctx).Debug("YAML file decoded.", "file", filename, "cities", len(model.Cities), "trips", len(model.Trips))
	return model, nil
}
