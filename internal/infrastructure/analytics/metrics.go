package analytics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeDegraded = "degraded"
)

var (
	sourceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_source_fetches_total",
			Help: "Total number of analytics source fetches by outcome",
		},
		[]string{"source", "outcome"},
	)

	sourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_source_fetch_duration_seconds",
			Help:    "Analytics source fetch duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)
)

func observeFetch(source string, start time.Time, err error) {
	sourceFetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	sourceFetchesTotal.WithLabelValues(source, outcome).Inc()
}

func recordDegraded(source string) {
	sourceFetchesTotal.WithLabelValues(source, outcomeDegraded).Inc()
}
