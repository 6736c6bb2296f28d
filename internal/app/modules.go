package app

import (
	"github.com/vk/goalwalker/internal/registry"
	"github.com/vk/goalwalker/modules/firstavailable"
	"github.com/vk/goalwalker/modules/nearest"
)

// coreModules is the definitive list of all strategy modules that are
// compiled into the goalwalker binary.
var coreModules = []registry.Module{
	&firstavailable.Module{},
	&nearest.Module{},
}
