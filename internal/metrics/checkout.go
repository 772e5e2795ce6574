package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Outcome label values.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeTimeout   = "timeout"
)

// CheckoutMetrics records checkout attempts and their results.
type CheckoutMetrics struct {
	attempts   *prometheus.CounterVec
	rejections *prometheus.CounterVec
	duration   prometheus.Histogram
	amount     prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
// A nil registerer yields a recorder that drops every observation.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkout_attempts_total",
		Help: "Submitted sale attempts by outcome.",
	}, []string{"outcome"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkout_rejections_total",
		Help: "Checkout requests rejected before submission.",
	}, []string{"reason"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_checkout_submit_duration_seconds",
		Help:    "Duration of sale submission calls in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	amount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_sale_amount",
		Help:    "Totals of completed sales.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})
	reg.MustRegister(attempts, rejections, duration, amount)
	return &CheckoutMetrics{
		attempts:   attempts,
		rejections: rejections,
		duration:   duration,
		amount:     amount,
	}
}

func (m *CheckoutMetrics) IncOutcome(outcome string) {
	if m == nil || m.attempts == nil {
		return
	}
	m.attempts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *CheckoutMetrics) IncRejection(reason string) {
	if m == nil || m.rejections == nil {
		return
	}
	m.rejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

func (m *CheckoutMetrics) ObserveSubmit(d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}

func (m *CheckoutMetrics) ObserveSaleAmount(total decimal.Decimal) {
	if m == nil || m.amount == nil {
		return
	}
	m.amount.Observe(total.InexactFloat64())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
