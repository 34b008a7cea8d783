package metrics

import "github.com/prometheus/client_golang/prometheus"

// QuoteMetrics counts quote computations by outcome.
type QuoteMetrics struct {
	computed *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	computed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_computed_total",
		Help: "Successfully computed quotes by currency.",
	}, []string{"currency"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_failed_total",
		Help: "Failed quote computations by error code.",
	}, []string{"code"})
	reg.MustRegister(computed, failed)
	return &QuoteMetrics{
		computed: computed,
		failed:   failed,
	}
}

// IncComputed increments the success counter for the given currency.
func (q *QuoteMetrics) IncComputed(currency string) {
	if q == nil || q.computed == nil {
		return
	}
	q.computed.WithLabelValues(normalizeLabel(currency)).Inc()
}

// IncFailed increments the failure counter for the given error code.
func (q *QuoteMetrics) IncFailed(code string) {
	if q == nil || q.failed == nil {
		return
	}
	q.failed.WithLabelValues(normalizeLabel(code)).Inc()
}
