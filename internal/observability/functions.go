package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FunctionCollector counts and times per-row function evaluations. It
// satisfies udf.Recorder.
type FunctionCollector struct {
	Calls     *prometheus.CounterVec
	Durations *prometheus.HistogramVec
	BatchRows *prometheus.HistogramVec
}

// NewFunctionCollector registers function metrics against reg, defaulting to
// the global Prometheus registry when nil.
func NewFunctionCollector(reg prometheus.Registerer) (*FunctionCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	calls, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "astro_function_calls_total",
		Help: "Evaluated function rows by function and outcome (ok, null, error).",
	}, []string{"function", "outcome"}), "astro_function_calls_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "astro_function_duration_seconds",
		Help:    "Per-row function evaluation time in seconds.",
		Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
	}, []string{"function"}), "astro_function_duration_seconds")
	if err != nil {
		return nil, err
	}

	rows, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "astro_batch_rows",
		Help:    "Rows per CallBatch request.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"function"}), "astro_batch_rows")
	if err != nil {
		return nil, err
	}

	return &FunctionCollector{Calls: calls, Durations: durations, BatchRows: rows}, nil
}

// ObserveCall records one evaluated row.
func (c *FunctionCollector) ObserveCall(function, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Calls.WithLabelValues(function, outcome).Inc()
	c.Durations.WithLabelValues(function).Observe(elapsed.Seconds())
}

// ObserveBatch records the size of one batch request.
func (c *FunctionCollector) ObserveBatch(function string, rows int) {
	if c == nil {
		return
	}
	c.BatchRows.WithLabelValues(function).Observe(float64(rows))
}
