package app

import (
	"github.com/vk/goalwalker/internal/config"
	"github.com/vk/goalwalker/internal/hcl_adapter"
	"github.com/vk/goalwalker/internal/yaml_adapter"
)

// DefaultLoader dispatches map files by extension to the HCL and YAML
// loaders.
func DefaultLoader() config.Loader {
	hcl := hcl_adapter.NewLoader()
	yml := yaml_adapter.NewLoader()
	return config.ByExtension{
		".hcl":  hcl,
		".yaml": yml,
		".yml":  yml,
	}
}
