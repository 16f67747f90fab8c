// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// One-shot operation metrics.
	MetricCompressOps   = "bytepress_compress_ops_total"
	MetricDecompressOps = "bytepress_decompress_ops_total"
	MetricErrors        = "bytepress_errors_total"
	MetricBytesIn       = "bytepress_bytes_in_total"
	MetricBytesOut      = "bytepress_bytes_out_total"

	// Streaming session metrics.
	MetricSessionsOpened   = "bytepress_sessions_opened_total"
	MetricSessionsFinished = "bytepress_sessions_finished_total"

	// Ratio of input to output bytes per compression operation.
	MetricCompressionRatio = "bytepress_compression_ratio"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
