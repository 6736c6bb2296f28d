package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all supported top-level blocks from a file. Unknown
// blocks and attributes are rejected by gohcl.
type fileRoot struct {
	Cities []*CityBlock `hcl:"city,block"`
	Trips  []*TripBlock `hcl:"trip,block"`
}

// CityBlock is the HCL schema for a `city "<name>" { ... }` block.
type CityBlock struct {
	Name string `hcl:"name,label"`
	// Neighbors is kept as an expression so it can be type-checked with cty
	// and reported with a precise source range.
	Neighbors hcl.Expression `hcl:"neighbors,optional"`
}

// TripBlock is the HCL schema for a `trip "<name>" { ... }` block.
type TripBlock struct {
	Name     string  `hcl:"name,label"`
	Start    string  `hcl:"start"`
	Goal     string  `hcl:"goal"`
	Strategy *string `hcl:"strategy,optional"`
}
