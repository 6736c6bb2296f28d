package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
// Field names in validation errors come from the flag tag.
type Config struct {
	MapPaths []string `flag:"map"` // hcl/yaml files or directories; empty means the builtin map

	Start    string `flag:"start" validate:"required_with=Goal"`
	Goal     string `flag:"goal" validate:"required_with=Start"`
	Strategy string `flag:"strategy" validate:"required"`
	Trip     string `flag:"trip" validate:"excluded_with=Start"`
	Output   string `flag:"output" validate:"oneof=text dot json"`

	LogFormat       string `flag:"log-format" validate:"omitempty,oneof=text json"`
	LogLevel        string `flag:"log-level" validate:"omitempty,oneof=debug info warn error"`
	HealthcheckPort int    `flag:"healthcheck-port" validate:"min=0,max=65535"`
	ServeAddr       string `flag:"serve" validate:"omitempty,contains=:"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	configValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
}

// NewConfig fills in defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Strategy == "" {
		cfg.Strategy = agent.DefaultStrategyName
	}
	if cfg.Output == "" {
		cfg.Output = render.FormatText
	}
	cfg.ServeAddr = strings.TrimSpace(cfg.ServeAddr)

	if err := configValidate.Struct(&cfg); err != nil {
		return nil, describeValidation(err)
	}
	return &cfg, nil
}

// describeValidation rewrites validator errors in terms of flags.
func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("invalid %s '%v': must be one of %s", fe.Field(), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "required_with":
			msgs = append(msgs, "start and goal must be given together")
		case "excluded_with":
			msgs = append(msgs, "trip cannot be combined with start and goal")
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s %v is out of range", fe.Field(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid %s '%v'", fe.Field(), fe.Value()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// mode names what Run will do, for logging.
func (c *Config) mode() string {
	switch {
	case c.ServeAddr != "":
		return "serve"
	case c.Start != "":
		return "walk"
	default:
		return "trips"
	}
}
