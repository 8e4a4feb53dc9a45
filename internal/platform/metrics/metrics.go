package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// RouteSearches counts shortest-path searches by vehicle class and outcome.
	RouteSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_searches_total", Help: "Shortest-path searches by vehicle class and outcome."},
		[]string{"class", "outcome"},
	)
	// RouteSearchDuration records search latency in seconds.
	RouteSearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "route_search_duration_seconds", Help: "Shortest-path search duration in seconds.", Buckets: []float64{.00001, .0001, .001, .01, .1, 1}},
		[]string{"class"},
	)

	// DispatchOutcomes counts order attempts by outcome.
	DispatchOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dispatch_outcomes_total", Help: "Order dispatch attempts by outcome."},
		[]string{"outcome"},
	)
)

var regOnce sync.Once

// RegisterDefault registers the service collectors on Registry. Safe to call repeatedly.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RouteSearches)
		Registry.MustRegister(RouteSearchDuration)
		Registry.MustRegister(DispatchOutcomes)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
