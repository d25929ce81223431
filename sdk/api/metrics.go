package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InstrumentTransport wraps next with request counting and latency
// observation, registering the collectors with reg. Long-running consumers
// of the SDK install this between the session transport and the network so
// that every API call-- including silent-refresh retries-- is visible.
func InstrumentTransport(
	reg prometheus.Registerer,
	next http.RoundTripper,
) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assetgrid_api_requests_total",
			Help: "API requests by method and status code.",
		},
		[]string{"method", "code"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assetgrid_api_request_duration_seconds",
			Help:    "API request latency by method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	reg.MustRegister(requests, duration)
	return promhttp.InstrumentRoundTripperCounter(
		requests,
		promhttp.InstrumentRoundTripperDuration(duration, next),
	)
}
