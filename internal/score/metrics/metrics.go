package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the score module.
type Metrics struct {
	// Dispatch outcomes by score id and outcome (ok or error code)
	CalculationsTotal *prometheus.CounterVec

	// End-to-end dispatch latency including validation and normalization
	DispatchDuration prometheus.Histogram

	// Number of registered scores, set once at startup
	RegistrySize prometheus.Gauge
}

// New creates a new Metrics instance with all score module metrics registered.
func New() *Metrics {
	return &Metrics{
		CalculationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medcalc_calculations_total",
			Help: "Total score dispatches by score id and outcome",
		}, []string{"score", "outcome"}),

		DispatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "medcalc_dispatch_duration_seconds",
			Help:    "Duration of score dispatch including validation and normalization",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),

		RegistrySize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "medcalc_registered_scores",
			Help: "Number of scores in the registry",
		}),
	}
}

// ObserveDispatch records one dispatch outcome and its duration.
func (m *Metrics) ObserveDispatch(score, outcome string, d time.Duration) {
	if m != nil {
		m.CalculationsTotal.WithLabelValues(score, outcome).Inc()
		m.DispatchDuration.Observe(d.Seconds())
	}
}

// SetRegistrySize records the registry size at startup.
func (m *Metrics) SetRegistrySize(n int) {
	if m != nil {
		m.RegistrySize.Set(float64(n))
	}
}
