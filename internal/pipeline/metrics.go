package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	fetchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_fetch_requests_total",
			Help: "Total number of news fetch requests by provider",
		},
		[]string{"provider"},
	)

	fetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_fetch_errors_total",
			Help: "Total number of failed news fetches by provider",
		},
		[]string{"provider"},
	)

	fetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_fetch_duration_seconds",
			Help:    "Duration of news fetches by provider",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	cacheFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_cache_fallbacks_total",
			Help: "Total number of requests served from the session cache after a fetch failure",
		},
		[]string{"provider"},
	)
)

func init() {
	prometheus.MustRegister(fetchRequests, fetchErrors, fetchDuration, cacheFallbacks)
}
