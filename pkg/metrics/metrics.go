package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ConstantLookupsTotal counts single-constant reads by outcome
	ConstantLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "constant_lookups_total",
			Help: "Constant lookups served, by key and result",
		},
		[]string{"key", "result"},
	)

	ConstantSetSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "constant_set_size",
			Help: "Number of constants currently served",
		},
	)
)
