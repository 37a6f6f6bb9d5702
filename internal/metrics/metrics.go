package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsProcessed *prometheus.CounterVec
	SubQueries        *prometheus.CounterVec
	APIErrors         prometheus.Counter
	RequestSeconds    *prometheus.HistogramVec
	PlacesReturned    prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "discovery_requests_total",
			Help: "Total number of processed discovery requests.",
		}, []string{"status"}),
		SubQueries: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "discovery_subqueries_total",
			Help: "Total number of fan-out sub-queries, by outcome.",
		}, []string{"outcome"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "discovery_provider_api_errors_total",
			Help: "Total number of errors received from the place-search provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "discovery_provider_request_duration_seconds",
			Help:    "Duration of requests to the place-search provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		PlacesReturned: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "discovery_places_returned",
			Help:    "Number of unified places returned per discovery request.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}),
	}
}
