package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockWriterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yieldledger",
		Subsystem: "block_writer",
		Name:      "flush_total",
		Help:      "Count of export batch flushes.",
	}, []string{"status"})

	blockWriterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "block_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of export batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	blockWriterFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "block_writer",
		Name:      "flush_size",
		Help:      "Number of blocks per export flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})
)

// BlockWriter tracks metrics for the export block writer.
type BlockWriter struct{}

// NewBlockWriter creates a BlockWriter metrics collector.
func NewBlockWriter() *BlockWriter {
	return &BlockWriter{}
}

// ObserveFlush records a flush of blocks to the export repository.
func (m BlockWriter) ObserveFlush(err error, blocks int, started time.Time) {
	status := statusOf(err)
	blockWriterFlushTotal.WithLabelValues(status).Inc()
	blockWriterFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	blockWriterFlushSize.Observe(float64(blocks))
}
