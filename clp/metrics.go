package clp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus metrics for solves.
// A nil *Metrics records nothing.
type Metrics struct {
	solves   *prometheus.CounterVec
	rejected *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// With a nil reg the collectors are created but not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		solves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clp_solves_total",
				Help: "Total number of native solve calls by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),

		rejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clp_rejected_total",
				Help: "Total number of calls rejected before reaching the engine",
			},
			[]string{"op", "field"},
		),

		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clp_solve_duration_seconds",
				Help:    "Wall time spent inside the native solve call",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60, 600},
			},
			[]string{"mode"},
		),
	}
}

func (m *Metrics) observeSolve(mode Mode, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(mode.String(), outcome).Inc()
	m.duration.WithLabelValues(mode.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) observeRejected(op, field string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(op, field).Inc()
}
