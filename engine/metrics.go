package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/algostep/step"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// Metrics holds the engine collectors. A nil *Metrics records nothing.
type Metrics struct {
	steps  *prometheus.CounterVec
	runs   *prometheus.CounterVec
	render prometheus.Histogram
	active prometheus.Gauge
}

// NewMetrics registers the engine collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algostep_steps_total",
			Help: "Events delivered to the renderer, by algorithm and kind.",
		}, []string{"algorithm", "kind"}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algostep_runs_total",
			Help: "Finished runs, by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		render: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "algostep_step_render_seconds",
			Help:    "Time the renderer took to settle one event.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
		active: f.NewGauge(prometheus.GaugeOpts{
			Name: "algostep_active_runs",
			Help: "Runs currently running or paused.",
		}),
	}
}

func (m *Metrics) stepRendered(algorithm string, k step.Kind, took time.Duration) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(algorithm, k.String()).Inc()
	m.render.Observe(took.Seconds())
}

func (m *Metrics) runStarted() {
	if m == nil {
		return
	}
	m.active.Inc()
}

func (m *Metrics) runFinished(algorithm, outcome string) {
	if m == nil {
		return
	}
	m.active.Dec()
	m.runs.WithLabelValues(algorithm, outcome).Inc()
}
