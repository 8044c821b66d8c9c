package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recruai",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Backend REST calls by endpoint and status code (\"error\" when no response).",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "recruai",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Backend REST call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})
)
