package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/app"
)

func TestParse_Valid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want app.Config
	}{
		{
			name: "no arguments uses the builtin map",
			args: nil,
			want: app.Config{Strategy: "first", Output: "text", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "walk with long map flag",
			args: []string{"-map", "maps/cities.hcl", "-start", "A", "-goal", "D"},
			want: app.Config{MapPaths: []string{"maps/cities.hcl"}, Start: "A", Goal: "D", Strategy: "first", Output: "text", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "shorthand and positional paths",
			args: []string{"-m", "a.hcl", "-trip", "a_to_f", "b.yaml", "c"},
			want: app.Config{MapPaths: []string{"a.hcl", "b.yaml", "c"}, Trip: "a_to_f", Strategy: "first", Output: "text", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "long and shorthand map flags together",
			args: []string{"-map", "a.hcl", "-m", "b.yaml", "c"},
			want: app.Config{MapPaths: []string{"a.hcl", "b.yaml", "c"}, Strategy: "first", Output: "text", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "everything else",
			args: []string{"-strategy", "nearest", "-output", "JSON", "-log-level", "DEBUG", "-log-format", "json", "-healthcheck-port", "8081", "-start", "D", "-goal", "A"},
			want: app.Config{Start: "D", Goal: "A", Strategy: "nearest", Output: "json", LogFormat: "json", LogLevel: "debug", HealthcheckPort: 8081},
		},
		{
			name: "serve",
			args: []string{"-serve", ":8080"},
			want: app.Config{ServeAddr: ":8080", Strategy: "first", Output: "text", LogFormat: "text", LogLevel: "info"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, exit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			require.False(t, exit)
			if diff := cmp.Diff(tc.want, *cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-strategy")
}

func TestParse_UsageErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		errText string
	}{
		{name: "unknown flag", args: []string{"-nope"}, errText: "flag provided but not defined: -nope"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, errText: "invalid log-format 'xml': must be one of text, json"},
		{name: "bad log level", args: []string{"-log-level", "loud"}, errText: "invalid log-level 'loud': must be one of debug, info, warn, error"},
		{name: "bad output", args: []string{"-output", "svg"}, errText: "invalid output 'svg'"},
		{name: "start only", args: []string{"-start", "A"}, errText: "start and goal must be given together"},
		{name: "serve with walk", args: []string{"-serve", ":80", "-start", "A", "-goal", "B"}, errText: "-serve cannot be combined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errText)
		})
	}
}
