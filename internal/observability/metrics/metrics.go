// Package metrics exposes Prometheus instrumentation for the intake core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mindwell"

// IntakeMetrics tracks wizard lifecycle outcomes. A nil receiver is safe
// everywhere so callers never need to guard instrumentation sites.
type IntakeMetrics struct {
	sessionsStarted    *prometheus.CounterVec
	sessionsResolved   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	paymentAttempts    *prometheus.CounterVec
	submitDuration     *prometheus.HistogramVec
}

// NewIntakeMetrics registers intake collectors against reg.
func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		sessionsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "sessions_started_total",
			Help:      "Intake sessions opened, by flow.",
		}, []string{"flow"}),
		sessionsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "sessions_resolved_total",
			Help:      "Intake sessions reaching a terminal status, by flow and status.",
		}, []string{"flow", "status"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "validation_failures_total",
			Help:      "Fields rejected on a step advance, by flow and field.",
		}, []string{"flow", "field"}),
		paymentAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "payment_attempts_total",
			Help:      "Simulated payment authorizations, by outcome.",
		}, []string{"status"}),
		submitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "submit_duration_seconds",
			Help:      "Wall time between submission start and resolution.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"flow"}),
	}
	reg.MustRegister(
		m.sessionsStarted,
		m.sessionsResolved,
		m.validationFailures,
		m.paymentAttempts,
		m.submitDuration,
	)
	return m
}

func (m *IntakeMetrics) ObserveSessionStarted(flow string) {
	if m == nil {
		return
	}
	m.sessionsStarted.WithLabelValues(flow).Inc()
}

func (m *IntakeMetrics) ObserveSessionResolved(flow, status string) {
	if m == nil {
		return
	}
	m.sessionsResolved.WithLabelValues(flow, status).Inc()
}

func (m *IntakeMetrics) ObserveValidationFailure(flow, field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(flow, field).Inc()
}

func (m *IntakeMetrics) ObservePaymentAttempt(status string) {
	if m == nil {
		return
	}
	m.paymentAttempts.WithLabelValues(status).Inc()
}

func (m *IntakeMetrics) ObserveSubmitDuration(flow string, seconds float64) {
	if m == nil {
		return
	}
	m.submitDuration.WithLabelValues(flow).Observe(seconds)
}

// SearchMetrics tracks catalog search traffic. Nil-safe like IntakeMetrics.
type SearchMetrics struct {
	queries    *prometheus.CounterVec
	resultSize prometheus.Histogram
}

// NewSearchMetrics registers search collectors against reg.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	m := &SearchMetrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "queries_total",
			Help:      "Search queries served, by outcome.",
		}, []string{"outcome"}),
		resultSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "result_size",
			Help:      "Number of documents matched per query.",
			Buckets:   []float64{0, 1, 2, 5, 10, 18},
		}),
	}
	reg.MustRegister(m.queries, m.resultSize)
	return m
}

// ObserveQuery records one served query. Outcome is "hit", "miss", or
// "short" for queries under the minimum length.
func (m *SearchMetrics) ObserveQuery(outcome string, results int) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(outcome).Inc()
	if outcome != "short" {
		m.resultSize.Observe(float64(results))
	}
}
