package domain

import (
	"slices"
	"sync"
)

// RouteGraph is an undirected, weighted multigraph keyed by location name.
//
// The graph is built once and then queried; AddRoute takes the write lock
// so a late writer cannot corrupt concurrent readers, but callers are
// expected to finish construction before searches begin.
type RouteGraph struct {
	mu       sync.RWMutex
	adj      map[string][]RouteSegment
	segments int
}

func NewRouteGraph() *RouteGraph {
	return &RouteGraph{adj: make(map[string][]RouteSegment)}
}

// AddRoute inserts from->to and to->from with the same distance and restrictions.
// Both locations are registered if absent. Parallel routes are kept.
//
// Precondition: ValidDistance(distance). It is not checked here; RouteSpec.Validate
// is the configuration-time guard.
func (g *RouteGraph) AddRoute(from, to string, distance float64, forbidden ClassSet) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[from] = append(g.adj[from], RouteSegment{From: from, To: to, Distance: distance, Forbidden: forbidden})
	g.adj[to] = append(g.adj[to], RouteSegment{From: to, To: from, Distance: distance, Forbidden: forbidden})
	g.segments += 2
}

// Neighbors returns the outgoing segments of location; unknown locations yield none.
// The returned slice must not be modified.
func (g *RouteGraph) Neighbors(location string) []RouteSegment {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := g.adj[location]
	return s[:len(s):len(s)]
}

func (g *RouteGraph) HasLocation(location string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[location]
	return ok
}

// Locations returns every node name in lexical order.
func (g *RouteGraph) Locations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adj))
	for loc := range g.adj {
		out = append(out, loc)
	}
	slices.Sort(out)
	return out
}

// SegmentCount returns the number of directed segments (twice the routes added).
func (g *RouteGraph) SegmentCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.segments
}
