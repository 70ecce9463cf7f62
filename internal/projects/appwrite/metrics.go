package appwrite

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "project_relay",
		Subsystem: "appwrite",
		Name:      "requests_total",
		Help:      "Outbound document store calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	upstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "project_relay",
		Subsystem: "appwrite",
		Name:      "request_duration_seconds",
		Help:      "Latency of outbound document store calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// recordUpstreamCall records an upstream service call
func recordUpstreamCall(operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	upstreamCalls.WithLabelValues(operation, outcome).Inc()
	upstreamLatency.WithLabelValues(operation).Observe(duration.Seconds())
}
