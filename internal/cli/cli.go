package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/app"
	"github.com/vk/goalwalker/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("goalwalker", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
goalwalker - walks a map of cities from a start to a goal, one neighbor at a time.

Usage:
  goalwalker [options] [MAP_PATH...]

Arguments:
  MAP_PATH
    A .hcl, .yaml or .yml map file, or a directory of them.
    Without one the builtin six-city map is used.

Examples:
  goalwalker -start A -goal D
  goalwalker -trip a_to_f -strategy nearest
  goalwalker -output dot -start D -goal A maps/ | dot -Tsvg > walk.svg
  goalwalker -serve :8080 maps/cities.yaml

Options:
`)
		flagSet.PrintDefaults()
	}

	mapFlag := flagSet.String("map", "", "Path to the map file or directory.")
	mFlag := flagSet.String("m", "", "Path to the map file or directory (shorthand).")
	startFlag := flagSet.String("start", "", "City the agent starts in.")
	goalFlag := flagSet.String("goal", "", "City the agent walks to.")
	strategyFlag := flagSet.String("strategy", agent.DefaultStrategyName, "Default strategy for picking the next city. Options: 'first', 'nearest'.")
	tripFlag := flagSet.String("trip", "", "Walk only the named trip from the map.")
	outputFlag := flagSet.String("output", render.FormatText, "Output format. Options: "+quoted(render.Formats)+".")
	serveFlag := flagSet.String("serve", "", "Address for the live socket.io server, e.g. ':8080'. Empty is disabled.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	for _, p := range []string{*mapFlag, *mFlag} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Map paths determined.", "paths", paths)

	if *serveFlag != "" && (*startFlag != "" || *goalFlag != "" || *tripFlag != "") {
		return nil, false, usageError("-serve cannot be combined with -start, -goal or -trip")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		MapPaths:        paths,
		Start:           strings.TrimSpace(*startFlag),
		Goal:            strings.TrimSpace(*goalFlag),
		Strategy:        *strategyFlag,
		Trip:            *tripFlag,
		Output:          strings.ToLower(*outputFlag),
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
		HealthcheckPort: *healthPortFlag,
		ServeAddr:       *serveFlag,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func quoted(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = "'" + n + "'"
	}
	return strings.Join(q, ", ")
}
