// Package metrics exposes solver metrics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pathfinder"

// Metrics records solve outcomes, durations and cache lookups.
type Metrics struct {
	solves      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cacheLookup *prometheus.CounterVec
	registry    *prometheus.Registry
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Total number of maze solves by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Time spent solving a maze",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"outcome"},
		),
		cacheLookup: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Solution cache lookups by result",
			},
			[]string{"result"},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(m.solves, m.duration, m.cacheLookup)
	return m
}

// ObserveSolve records one solve.
func (m *Metrics) ObserveSolve(outcome string, elapsed time.Duration) {
	m.solves.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveCache records one cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookup.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
