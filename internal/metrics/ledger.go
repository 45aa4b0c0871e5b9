// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
)

var (
	ledgerAppendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "append_total",
		Help:      "Count of block appends.",
	}, []string{"kind", "status"})

	ledgerAppendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "append_duration_seconds",
		Help:      "Duration of block appends, sealing included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	ledgerSealDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "seal_duration_seconds",
		Help:      "Duration of proof-of-work nonce searches.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"status"})

	ledgerSealAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "seal_attempts",
		Help:      "Nonces tried per seal.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 14), // 1..4^13
	}, []string{"status"})

	ledgerVerifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "verify_total",
		Help:      "Count of prediction verifications by result.",
	}, []string{"result"})

	ledgerVerifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "verify_duration_seconds",
		Help:      "Duration of prediction verifications.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})

	ledgerValidateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "validate_total",
		Help:      "Count of chain validations by verdict.",
	}, []string{"valid"})

	ledgerValidateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "validate_duration_seconds",
		Help:      "Duration of full chain validations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"valid"})

	ledgerSinkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "sink_total",
		Help:      "Count of blocks handed to the block sink.",
	}, []string{"status"})

	ledgerChainLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yieldledger",
		Subsystem: "ledger",
		Name:      "chain_length",
		Help:      "Number of blocks in the chain, genesis included.",
	})
)

// Ledger tracks metrics for ledger operations.
type Ledger struct{}

// NewLedger creates a Ledger metrics collector.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveAppend records the outcome and duration of a block append.
func (m Ledger) ObserveAppend(kind model.BlockKind, err error, started time.Time) {
	if kind == "" {
		kind = "unknown"
	}
	status := statusOf(err)
	ledgerAppendTotal.WithLabelValues(string(kind), status).Inc()
	ledgerAppendDuration.WithLabelValues(string(kind), status).Observe(time.Since(started).Seconds())
}

// ObserveSeal records a nonce search.
func (m Ledger) ObserveSeal(attempts uint64, err error, started time.Time) {
	status := statusOf(err)
	ledgerSealDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	ledgerSealAttempts.WithLabelValues(status).Observe(float64(attempts))
}

// ObserveVerify records a verification by its result label.
func (m Ledger) ObserveVerify(result string, started time.Time) {
	ledgerVerifyTotal.WithLabelValues(result).Inc()
	ledgerVerifyDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}

// ObserveValidate records a chain validation verdict.
func (m Ledger) ObserveValidate(valid bool, started time.Time) {
	label := boolLabel(valid)
	ledgerValidateTotal.WithLabelValues(label).Inc()
	ledgerValidateDuration.WithLabelValues(label).Observe(time.Since(started).Seconds())
}

// ObserveSink records a hand-off to the block sink.
func (m Ledger) ObserveSink(err error) {
	ledgerSinkTotal.WithLabelValues(statusOf(err)).Inc()
}

// SetChainLength publishes the current chain length.
func (m Ledger) SetChainLength(length int) {
	ledgerChainLength.Set(float64(length))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
