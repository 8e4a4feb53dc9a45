package domain

import (
	"fmt"
	"math"
	"strings"
)

// A directed route segment stored in the graph's adjacency lists.
// Every undirected route is represented by two segments sharing
// distance and restrictions.
type RouteSegment struct {
	From      string
	To        string
	Distance  float64
	Forbidden ClassSet
}

// ValidDistance reports whether d is a usable route weight: finite and non-negative.
func ValidDistance(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d >= 0
}

// RouteSpec is one undirected route as supplied by configuration.
type RouteSpec struct {
	From      string
	To        string
	Distance  float64
	Forbidden ClassSet
}

// Validate enforces the configuration preconditions of a route.
func (r RouteSpec) Validate() error {
	if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
		return fmt.Errorf("route %q -> %q: endpoints must be non-empty: %w", r.From, r.To, ErrInvalidLocation)
	}
	if !ValidDistance(r.Distance) {
		return fmt.Errorf("route %q -> %q: distance=%g: %w", r.From, r.To, r.Distance, ErrInvalidDistance)
	}
	return nil
}

// Represents the outcome of a successful search.
// Path runs from start to end inclusive; Distance is the cumulative cost.
// A PathResult is only ever a return value and is never persisted.
type PathResult struct {
	Path     []string
	Distance float64
}

// Hops returns the number of segments on the path.
func (p PathResult) Hops() int {
	if len(p.Path) == 0 {
		return 0
	}
	return len(p.Path) - 1
}

func (p PathResult) String() string {
	return strings.Join(p.Path, " -> ")
}
