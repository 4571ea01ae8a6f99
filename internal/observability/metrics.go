package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "event_dashboard"

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	DatasetFetches *prometheus.CounterVec   // labels: category, outcome={success,error}
	FetchDuration  *prometheus.HistogramVec // labels: category
	CacheLookups   *prometheus.CounterVec   // labels: category, result={hit,miss,error}

	SearchesApplied  *prometheus.CounterVec // labels: category
	Selections       *prometheus.CounterVec // labels: category, granularity={record,event,hazard}
	CategorySwitches *prometheus.CounterVec // labels: category

	ActiveSessions prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetFetches,
		m.FetchDuration,
		m.CacheLookups,
		m.SearchesApplied,
		m.Selections,
		m.CategorySwitches,
		m.ActiveSessions,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them so multiple
// tests can build their own.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_fetches_total",
			Help:      "Dataset loads from the event source by category and outcome.",
		}, []string{"category", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_fetch_duration_seconds",
			Help:      "Duration of a dataset load in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"category"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_cache_total",
			Help:      "Dataset cache lookups by category and result.",
		}, []string{"category", "result"}),
		SearchesApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_applied_total",
			Help:      "Debounced search terms committed to a session.",
		}, []string{"category"}),
		Selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Selections by category and granularity.",
		}, []string{"category", "granularity"}),
		CategorySwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_switches_total",
			Help:      "Category activations, including returns to the picker.",
		}, []string{"category"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Dashboard sessions currently held in memory.",
		}),
	}
}
