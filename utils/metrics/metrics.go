package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the asteroid
// tracking pipeline.
type Metrics struct {
	FeedRequests *prometheus.CounterVec // labels: outcome={success,error}

	// Alert evaluation metrics.
	EntriesEvaluated prometheus.Counter
	EntriesSkipped   prometheus.Counter
	AlertsEmitted    prometheus.Counter

	NeoAPIDuration *prometheus.HistogramVec // labels: operation={feed,lookup}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.FeedRequests,
		m.EntriesEvaluated,
		m.EntriesSkipped,
		m.AlertsEmitted,
		m.NeoAPIDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh, unregistered set of
// collectors to avoid "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cosmowatch",
			Name:      "feed_requests_total",
			Help:      "Feed proxy requests by outcome.",
		}, []string{"outcome"}),
		EntriesEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cosmowatch",
			Name:      "evaluation_entries_total",
			Help:      "Watchlist entries processed by alert evaluation.",
		}),
		EntriesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cosmowatch",
			Name:      "evaluation_entries_skipped_total",
			Help:      "Watchlist entries skipped because the provider fetch failed.",
		}),
		AlertsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cosmowatch",
			Name:      "alerts_emitted_total",
			Help:      "Approach alerts materialized across all evaluations.",
		}),
		NeoAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cosmowatch",
			Name:      "neo_api_duration_seconds",
			Help:      "NeoWs API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
	}
}
