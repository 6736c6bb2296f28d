package app

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/registry"
	"github.com/vk/goalwalker/internal/testutil"
)

// SetupAppTest creates a new app instance for testing. Rendered output and
// logs are captured separately.
func SetupAppTest(t *testing.T, cfg Config, modules ...registry.Module) (*App, *Config, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logBuffer := &testutil.SafeBuffer{}
	testApp, err := NewApp(out, logBuffer, validated, DefaultLoader(), modules...)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("GOALWALKER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, validated, out, logBuffer
}
