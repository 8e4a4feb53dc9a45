package services

import (
	"errors"
	"time"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/metrics"
)

// FindRoute runs ShortestPath and records its latency and outcome per vehicle class.
// Every caller that searches the network goes through here.
func FindRoute(network Network, start, end string, vehicle domain.Vehicle) (domain.PathResult, error) {
	began := time.Now()
	route, err := ShortestPath(network, start, end, vehicle)

	class := vehicle.Class.String()
	metrics.RouteSearchDuration.WithLabelValues(class).Observe(time.Since(began).Seconds())
	metrics.RouteSearches.WithLabelValues(class, SearchOutcome(err)).Inc()
	return route, err
}

// SearchOutcome labels a search result as found, unreachable or error.
func SearchOutcome(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, domain.ErrNoRoute):
		return "unreachable"
	}
	return "error"
}
