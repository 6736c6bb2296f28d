package hcl_adapter

import (
	"context"
	_ "embed"

	"github.com/vk/goalwalker/internal/config"
)

//go:embed builtin.hcl
var builtinSrc []byte

// Builtin loads the compiled-in reference map used when no map path is given.
func Builtin(ctx context.Context) (*config.Model, error) {
	return NewLoader().LoadSource(ctx, "builtin.hcl", builtinSrc)
}
