// internal/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Prometheus metrics
var (
	CallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xibbaz_api_call_duration_seconds",
			Help:    "Time spent on remote API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	CallTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xibbaz_api_calls_total",
			Help: "Total number of remote API calls issued",
		},
		[]string{"method", "status"},
	)
)

// Collector records per-call observations. A CLI process has no scrape
// surface, so metrics leave the process through a Pushgateway instead.
type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) RecordCall(method string, ok bool, duration time.Duration) {
	status := "ok"
	if !ok {
		status = "error"
	}
	CallDuration.WithLabelValues(method).Observe(duration.Seconds())
	CallTotal.WithLabelValues(method, status).Inc()
}

// Push delivers everything in the default registry to a Pushgateway under
// the given job name.
func (c *Collector) Push(gateway, job string) error {
	return push.New(gateway, job).
		Gatherer(prometheus.DefaultGatherer).
		Push()
}
