package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "yieldledger",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests by route and status code.",
	}, []string{"route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "yieldledger",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "code"})
)

// HTTP tracks metrics for the HTTP transport.
type HTTP struct{}

// NewHTTP creates an HTTP metrics collector.
func NewHTTP() *HTTP {
	return &HTTP{}
}

// ObserveRequest records a served request.
func (m HTTP) ObserveRequest(route string, code int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	c := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(route, c).Inc()
	httpRequestDuration.WithLabelValues(route, c).Observe(time.Since(started).Seconds())
}
