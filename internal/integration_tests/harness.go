// Package integration_tests holds the harness shared by the end-to-end test
// suites in its subdirectories. Each suite writes map files into a temp
// directory, runs a full App against them and inspects the rendered output
// and the logs.
package integration_tests

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/app"
	"github.com/vk/goalwalker/internal/testutil"
)

// HarnessResult is what a single harness run produced.
type HarnessResult struct {
	App    *app.App
	Err    error // from NewApp or Run, whichever failed first
	Output string
	Logs   string
}

// RunIntegrationTest writes files below a fresh directory, points the app at
// that directory and runs it with cfg. MapPaths in cfg are ignored unless
// files is empty.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-owned
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	if len(files) > 0 {
		cfg.MapPaths = []string{testutil.WriteFiles(t, files)}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err, "harness config must be valid")

	out := &bytes.Buffer{}
	logBuffer := &testutil.SafeBuffer{}
	result := &HarnessResult{}

	result.App, result.Err = app.NewApp(out, logBuffer, validated, app.DefaultLoader())
	if result.Err == nil {
		result.Err = result.App.Run(ctx, validated)
	}
	result.Output = out.String()
	result.Logs = logBuffer.String()

	t.Cleanup(func() {
		if os.Getenv("GOALWALKER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.Logs)
		}
	})
	return result
}
