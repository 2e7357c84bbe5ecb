package metrics

import "github.com/prometheus/client_golang/prometheus"

// PlanMetrics exposes counters/histograms for the treatment-plan flows.
type PlanMetrics struct {
	persistTotal      *prometheus.CounterVec
	rollbackTotal     prometheus.Counter
	suggestionLatency prometheus.Histogram
	recordFetchTotal  *prometheus.CounterVec
}

func NewPlanMetrics(reg prometheus.Registerer) *PlanMetrics {
	m := &PlanMetrics{
		persistTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leaddash",
			Subsystem: "plan",
			Name:      "persist_total",
			Help:      "Total plan persistence attempts",
		}, []string{"action", "status"}),
		rollbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leaddash",
			Subsystem: "plan",
			Name:      "rollback_total",
			Help:      "Total optimistic-update rollbacks after failed persists",
		}),
		suggestionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "leaddash",
			Subsystem: "recommend",
			Name:      "suggestion_latency_seconds",
			Help:      "Latency of suggestion requests",
			Buckets:   prometheus.DefBuckets,
		}),
		recordFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leaddash",
			Subsystem: "records",
			Name:      "fetch_total",
			Help:      "Total patient record fetches by source",
		}, []string{"source", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.persistTotal, m.rollbackTotal, m.suggestionLatency, m.recordFetchTotal)
	return m
}

func (m *PlanMetrics) ObservePersist(action, status string) {
	if m == nil {
		return
	}
	m.persistTotal.WithLabelValues(action, status).Inc()
}

func (m *PlanMetrics) ObserveRollback() {
	if m == nil {
		return
	}
	m.rollbackTotal.Inc()
}

func (m *PlanMetrics) ObserveSuggestionLatency(seconds float64) {
	if m == nil {
		return
	}
	m.suggestionLatency.Observe(seconds)
}

func (m *PlanMetrics) ObserveRecordFetch(source, status string) {
	if m == nil {
		return
	}
	m.recordFetchTotal.WithLabelValues(source, status).Inc()
}
