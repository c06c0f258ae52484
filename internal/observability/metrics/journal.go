package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// JournalMetrics contains Prometheus metrics for journal service operations.
// It implements Recorder.
type JournalMetrics struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationErrors   *prometheus.CounterVec
}

// NewJournalMetrics creates and registers journal metrics.
func NewJournalMetrics(registry *prometheus.Registry) (*JournalMetrics, error) {
	m := &JournalMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *JournalMetrics) initMetrics() {
	m.operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huntlog_journal_operations_total",
			Help: "Total number of journal operations",
		},
		[]string{"operation", "status"}, // operation: create_entry, dashboard, cache_get; status: success, error, hit, miss
	)

	m.operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "huntlog_journal_operation_duration_seconds",
			Help:    "Time taken for journal operations",
			Buckets: prometheus.ExponentialBuckets(BucketStart1ms, BucketFactor2, BucketCount12), // 1ms to ~4s
		},
		[]string{"operation"},
	)

	m.operationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huntlog_journal_operation_errors_total",
			Help: "Total number of failed journal operations by error category",
		},
		[]string{"operation", "error_type"}, // error_type: validation, not-found, conflict, authorization, database
	)
}

func (m *JournalMetrics) getCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.operationsTotal,
		m.operationDuration,
		m.operationErrors,
	}
}

// Describe implements the Collector interface
func (m *JournalMetrics) Describe(ch chan<- *prometheus.Desc) {
	for _, collector := range m.getCollectors() {
		collector.Describe(ch)
	}
}

// Collect implements the Collector interface
func (m *JournalMetrics) Collect(ch chan<- prometheus.Metric) {
	for _, collector := range m.getCollectors() {
		collector.Collect(ch)
	}
}

// RecordOperation implements Recorder.
func (m *JournalMetrics) RecordOperation(operation, status string) {
	m.operationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordDuration implements Recorder.
func (m *JournalMetrics) RecordDuration(operation string, seconds float64) {
	m.operationDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordError implements Recorder.
func (m *JournalMetrics) RecordError(operation, errorType string) {
	m.operationErrors.WithLabelValues(operation, errorType).Inc()
}
