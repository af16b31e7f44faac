package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters/histograms for coordinator flows.
type SchedulingMetrics struct {
	providerCalls  *prometheus.CounterVec
	operations     *prometheus.CounterVec
	searchAttempts prometheus.Histogram
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadwise",
			Subsystem: "scheduling",
			Name:      "provider_calls_total",
			Help:      "Total calendar provider API calls",
		}, []string{"provider", "operation", "status"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadwise",
			Subsystem: "scheduling",
			Name:      "operations_total",
			Help:      "Total coordinator operations by outcome",
		}, []string{"operation", "outcome"}),
		searchAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "leadwise",
			Subsystem: "scheduling",
			Name:      "availability_search_attempts",
			Help:      "Sliding-window attempts used per availability search",
			Buckets:   []float64{1, 2, 3, 4, 5},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.providerCalls, m.operations, m.searchAttempts)
	return m
}

func (m *SchedulingMetrics) ObserveProviderCall(provider, operation, status string) {
	if m == nil {
		return
	}
	m.providerCalls.WithLabelValues(provider, operation, status).Inc()
}

func (m *SchedulingMetrics) ObserveOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

func (m *SchedulingMetrics) ObserveSearchAttempts(attempts int) {
	if m == nil {
		return
	}
	m.searchAttempts.Observe(float64(attempts))
}
