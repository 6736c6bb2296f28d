package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/nodeid"
)

func TestRecorder_ObserveWalk(t *testing.T) {
	r := New()

	r.ObserveWalk(&agent.Result{Strategy: "first", Status: agent.StatusReached, Path: nodeid.IDs("A", "B", "D")}, time.Millisecond)
	r.ObserveWalk(&agent.Result{Strategy: "first", Status: agent.StatusStuck, Path: nodeid.IDs("A", "B", "D")}, time.Millisecond)
	r.ObserveWalk(&agent.Result{Strategy: "first", Status: agent.StatusReached, Path: nodeid.IDs("D", "B", "A")}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.walks.WithLabelValues("first", "reached")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.walks.WithLabelValues("first", "stuck")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.pathLength))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestRecorder_ObserveRejected(t *testing.T) {
	r := New()

	r.ObserveRejected("invalid_identifier")
	r.ObserveRejected("invalid_identifier")
	r.ObserveRejected("unknown_strategy")

	expected := `
# HELP goalwalker_rejected_requests_total Walk requests refused before or during the walk.
# TYPE goalwalker_rejected_requests_total counter
goalwalker_rejected_requests_total{reason="invalid_identifier"} 2
goalwalker_rejected_requests_total{reason="unknown_strategy"} 1
`
	require.NoError(t, testutil.CollectAndCompare(r.rejected, strings.NewReader(expected)))
}

func TestRecorder_ObserveReload(t *testing.T) {
	r := New()

	r.ObserveReload(nil)
	r.ObserveReload(errors.New("broken map"))
	r.ObserveReload(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.reloads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.reloads.WithLabelValues("failed")))
}

func TestRecorder_Handler(t *testing.T) {
	r := New()
	r.ObserveWalk(&agent.Result{Strategy: "nearest", Status: agent.StatusReached, Path: nodeid.IDs("A", "C", "F")}, time.Millisecond)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `goalwalker_walks_total{status="reached",strategy="nearest"} 1`)
	assert.Contains(t, string(body), `goalwalker_path_length_cities_count{strategy="nearest"} 1`)
}

func TestRecorder_IsolatedRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveRejected("unknown_strategy")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.rejected.WithLabelValues("unknown_strategy")))
	assert.Equal(t, 0, testutil.CollectAndCount(b.rejected))
}
