// Package metrics exposes Prometheus counters for runs and jumps.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Metrics holds the game's collectors.
type Metrics struct {
	RunsStarted prometheus.Counter
	RunsEnded   *prometheus.CounterVec
	Jumps       *prometheus.CounterVec
	RunSteps    prometheus.Histogram
	Sessions    prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
// A nil reg uses a fresh private registry.
func New(namespace string, reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		RunsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_started_total",
			Help:      "Number of runs started",
		}),
		RunsEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_ended_total",
			Help:      "Number of runs ended, by outcome",
		}, []string{"outcome"}),
		Jumps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jumps_total",
			Help:      "Number of jumps started, by step count",
		}, []string{"step"}),
		RunSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_steps",
			Help:      "Steps reached per run",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ssh_sessions",
			Help:      "Number of connected SSH sessions",
		}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.RunsStarted,
		m.RunsEnded,
		m.Jumps,
		m.RunSteps,
		m.Sessions,
	)

	return m
}

// RunStarted counts a run entering Playing.
func (m *Metrics) RunStarted() {
	if m == nil {
		return
	}
	m.RunsStarted.Inc()
}

// RunEnded records a finished run.
func (m *Metrics) RunEnded(r core.RunResult) {
	if m == nil {
		return
	}
	outcome := "fail"
	if r.Success {
		outcome = "success"
	}
	m.RunsEnded.WithLabelValues(outcome).Inc()
	m.RunSteps.Observe(float64(r.Steps))
}

// Jumped counts a jump of step tiles.
func (m *Metrics) Jumped(step int) {
	if m == nil {
		return
	}
	m.Jumps.WithLabelValues(strconv.Itoa(step)).Inc()
}

// SessionOpened and SessionClosed track connected SSH sessions.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.Sessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.Sessions.Dec()
}

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
