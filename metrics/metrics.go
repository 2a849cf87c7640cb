package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	SparqlQueries  *prometheus.CounterVec
	SparqlDuration prometheus.Histogram
	ScopusRequests *prometheus.CounterVec
	HTTPRequests   *prometheus.CounterVec
	SearchRuns     *prometheus.CounterVec
}

// New creates and registers all metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SparqlQueries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "explorador_sparql_queries_total",
			Help: "SPARQL queries issued, by outcome",
		}, []string{"status"}),
		SparqlDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "explorador_sparql_query_duration_seconds",
			Help:    "Latency of SPARQL queries",
			Buckets: prometheus.DefBuckets,
		}),
		ScopusRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "explorador_scopus_requests_total",
			Help: "Scopus search requests, by outcome",
		}, []string{"status"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "explorador_http_requests_total",
			Help: "HTTP requests served, by route and status code",
		}, []string{"route", "code"}),
		SearchRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "explorador_search_runs_total",
			Help: "Debounced general searches, by whether the result was applied or discarded as stale",
		}, []string{"outcome"}),
	}
}

// NewNop returns metrics registered against a private registry, for tests and
// tools that do not expose them.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveSparql records one SPARQL query.
func (m *Metrics) ObserveSparql(status string, seconds float64) {
	if m == nil {
		return
	}
	m.SparqlQueries.WithLabelValues(status).Inc()
	m.SparqlDuration.Observe(seconds)
}

// IncScopus records one Scopus request.
func (m *Metrics) IncScopus(status string) {
	if m == nil {
		return
	}
	m.ScopusRequests.WithLabelValues(status).Inc()
}

// IncSearch records a debounced search run.
func (m *Metrics) IncSearch(outcome string) {
	if m == nil {
		return
	}
	m.SearchRuns.WithLabelValues(outcome).Inc()
}

// IncHTTP records one served HTTP request.
func (m *Metrics) IncHTTP(route string, code int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
