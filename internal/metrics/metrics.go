// Package metrics exposes Prometheus counters and histograms describing the
// walks an application instance has served.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vk/goalwalker/internal/agent"
)

const namespace = "goalwalker"

// Recorder owns a private Prometheus registry so several application
// instances (and tests) never collide on the default one.
type Recorder struct {
	registry   *prometheus.Registry
	walks      *prometheus.CounterVec
	pathLength *prometheus.HistogramVec
	duration   prometheus.Histogram
	rejected   *prometheus.CounterVec
	reloads    *prometheus.CounterVec
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		walks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "walks_total",
			Help:      "Completed walks by strategy and terminal status.",
		}, []string{"strategy", "status"}),
		pathLength: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length_cities",
			Help:      "Number of cities on the path of a completed walk.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}, []string{"strategy"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "walk_duration_seconds",
			Help:      "Wall time spent inside the walker.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_requests_total",
			Help:      "Walk requests refused before or during the walk.",
		}, []string{"reason"}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_reloads_total",
			Help:      "Map reloads triggered by file changes, by result.",
		}, []string{"result"}),
	}
}

// ObserveWalk records a completed walk.
func (r *Recorder) ObserveWalk(res *agent.Result, elapsed time.Duration) {
	r.walks.WithLabelValues(res.Strategy, res.Status.String()).Inc()
	r.pathLength.WithLabelValues(res.Strategy).Observe(float64(len(res.Path)))
	r.duration.Observe(elapsed.Seconds())
}

// ObserveRejected records a refused request.
func (r *Recorder) ObserveRejected(reason string) {
	r.rejected.WithLabelValues(reason).Inc()
}

// ObserveReload records a map reload attempt; a non-nil err counts as a
// failure.
func (r *Recorder) ObserveReload(err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	r.reloads.WithLabelValues(result).Inc()
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
