package metrics

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yieldledger",
		Subsystem: "auditor",
		Name:      "runs_total",
		Help:      "Count of audit passes over the chain.",
	}, []string{"status"})

	auditRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "auditor",
		Name:      "run_duration_seconds",
		Help:      "Duration of an audit pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	auditChainValid = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yieldledger",
		Subsystem: "auditor",
		Name:      "chain_valid",
		Help:      "1 when the last audit found the chain valid, 0 otherwise.",
	})

	auditMAPEPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "yieldledger",
		Subsystem: "auditor",
		Name:      "mape_percent",
		Help:      "Mean absolute percentage error over verified predictions. NaN when undefined.",
	})

	auditOutcomes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "yieldledger",
		Subsystem: "auditor",
		Name:      "outcomes",
		Help:      "Verified predictions seen by the last audit.",
	}, []string{"mape"})
)

// Auditor tracks metrics for the periodic chain auditor.
type Auditor struct{}

// NewAuditor creates an Auditor metrics collector.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// ObserveRun records the outcome and duration of an audit pass.
func (m Auditor) ObserveRun(err error, started time.Time) {
	status := statusOf(err)
	auditRunsTotal.WithLabelValues(status).Inc()
	auditRunDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// SetChainValid publishes the last validation verdict.
func (m Auditor) SetChainValid(valid bool) {
	if valid {
		auditChainValid.Set(1)
		return
	}
	auditChainValid.Set(0)
}

// SetAccuracy publishes the accuracy figures of the last audit.
func (m Auditor) SetAccuracy(mape *float64, counted, excludedZero int) {
	if mape == nil {
		auditMAPEPercent.Set(math.NaN())
	} else {
		auditMAPEPercent.Set(*mape)
	}
	auditOutcomes.WithLabelValues("counted").Set(float64(counted))
	auditOutcomes.WithLabelValues("excluded_zero").Set(float64(excludedZero))
}
