package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts served requests by route template, method and status
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "walletapi_http_requests_total",
		Help: "Total number of HTTP requests served",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records request latency by route template and method
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "walletapi_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// TransfersEchoed counts accepted transfer requests. Nothing is moved; the
// counter tracks traffic only.
var TransfersEchoed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "walletapi_transfers_echoed_total",
		Help: "Total number of transfer requests answered",
	},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, TransfersEchoed)
}
