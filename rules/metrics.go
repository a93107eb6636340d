package rules

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments the engine. All record methods are nil-safe so an
// engine built without instrumentation pays nothing.
type Metrics struct {
	resolutionsTotal   *prometheus.CounterVec
	rulesFiredTotal    prometheus.Counter
	comparisonFailures *prometheus.CounterVec
}

// NewMetrics creates and registers engine metrics with the provided registry.
// If registry is nil a fresh one is created, which keeps tests isolated.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		resolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "verdict",
				Subsystem: "engine",
				Name:      "resolutions_total",
				Help:      "Total number of resolutions by winning decision",
			},
			[]string{"decision"},
		),
		rulesFiredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "verdict",
				Subsystem: "engine",
				Name:      "rules_fired_total",
				Help:      "Total number of fired rules across all resolutions",
			},
		),
		comparisonFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "verdict",
				Subsystem: "engine",
				Name:      "comparison_failures_total",
				Help:      "Conditions evaluated false because the value kinds do not support the operator",
			},
			[]string{"operator"},
		),
	}

	registry.MustRegister(
		m.resolutionsTotal,
		m.rulesFiredTotal,
		m.comparisonFailures,
	)

	return m
}

func (m *Metrics) recordResolution(decision string, fired int) {
	if m == nil {
		return
	}
	m.resolutionsTotal.WithLabelValues(decision).Inc()
	m.rulesFiredTotal.Add(float64(fired))
}

func (m *Metrics) recordComparisonFailure(operator string) {
	if m == nil {
		return
	}
	m.comparisonFailures.WithLabelValues(operator).Inc()
}
