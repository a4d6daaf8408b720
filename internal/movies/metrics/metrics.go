package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_http_requests_total",
			Help: "Total number of HTTP requests by route and status class",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movies_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movies_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AccountEvents counts credential operations by outcome (ok, invalid,
	// duplicate, not_found, error).
	AccountEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_account_events_total",
			Help: "Account operations by kind and outcome",
		},
		[]string{"operation", "outcome"},
	)

	TMDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_tmdb_requests_total",
			Help: "Requests sent to the TMDB API by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	MoviesPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movies_purged_total",
			Help: "Soft-deleted movies removed by housekeeping",
		},
	)
)
