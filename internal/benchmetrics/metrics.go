package benchmetrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus metrics emitted by a teardown-bench run.
type Metrics struct {
	cyclesTotal       *prometheus.CounterVec
	cycleDuration     prometheus.Histogram
	entriesDeleted    prometheus.Counter
	refillsTotal      *prometheus.CounterVec
	treeSizeAfterTear prometheus.Gauge
}

// NewMetrics creates and registers the teardown-bench Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		cyclesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "teardownbench_cycles_total",
				Help: "Total number of build/tear-down/refill cycles run",
			},
			[]string{"status"},
		),

		cycleDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "teardownbench_cycle_duration_seconds",
				Help:    "Duration of one full build/tear-down/refill cycle",
				Buckets: prometheus.DefBuckets,
			},
		),

		entriesDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "teardownbench_entries_deleted_total",
				Help: "Total number of entries removed across all bulk deletes",
			},
		),

		refillsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "teardownbench_refills_total",
				Help: "Total number of tree refills performed",
			},
			[]string{"status"},
		),

		treeSizeAfterTear: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "teardownbench_tree_size_after_tear",
				Help: "Live entry count remaining immediately after a tear-down pass",
			},
		),
	}
}

// RecordCycle records one completed build/tear-down/refill cycle.
func (m *Metrics) RecordCycle(success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.cyclesTotal.WithLabelValues(status).Inc()
	m.cycleDuration.Observe(duration.Seconds())
}

// RecordDeletions records entries removed by a single bulk-delete call.
func (m *Metrics) RecordDeletions(count int) {
	m.entriesDeleted.Add(float64(count))
}

// RecordRefill records a tree refill outcome.
func (m *Metrics) RecordRefill(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.refillsTotal.WithLabelValues(status).Inc()
}

// UpdateTreeSize updates the gauge tracking live entries remaining after a
// tear-down pass.
func (m *Metrics) UpdateTreeSize(size int) {
	m.treeSizeAfterTear.Set(float64(size))
}

// WriteText renders every registered metric in Prometheus text exposition
// format to w. Called once at the end of a run, since the benchmark CLI has
// no HTTP surface to scrape from.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
