package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"warehouse-shipping-service/internal/domain"
)

var (
	van   = domain.Vehicle{ID: "VAN456", Capacity: 500, Class: domain.Van}
	truck = domain.Vehicle{ID: "TRK123", Capacity: 1000, Class: domain.Truck}
	bike  = domain.Vehicle{ID: "BIK789", Capacity: 40, Class: domain.Bike}
)

// warehouseNetwork is the three-location network the warehouse starts with.
func warehouseNetwork() *domain.RouteGraph {
	g := domain.NewRouteGraph()
	g.AddRoute("Warehouse", "Customer1", 10, domain.NewClassSet(domain.Truck))
	g.AddRoute("Warehouse", "Customer2", 20, 0)
	g.AddRoute("Customer1", "Customer2", 15, domain.NewClassSet(domain.Bike))
	return g
}

func TestShortestPathWarehouseScenario(t *testing.T) {
	g := warehouseNetwork()

	cases := []struct {
		name     string
		vehicle  domain.Vehicle
		end      string
		wantPath []string
		wantDist float64
	}{
		{"van takes the direct edge", van, "Customer1", []string{"Warehouse", "Customer1"}, 10},
		{"truck detours around its restriction", truck, "Customer1", []string{"Warehouse", "Customer2", "Customer1"}, 35},
		{"bike uses the direct edge", bike, "Customer2", []string{"Warehouse", "Customer2"}, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ShortestPath(g, "Warehouse", tc.end, tc.vehicle)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got.Path, tc.wantPath) {
				t.Fatalf("path = %v, want %v", got.Path, tc.wantPath)
			}
			if got.Distance != tc.wantDist {
				t.Fatalf("distance = %g, want %g", got.Distance, tc.wantDist)
			}
		})
	}
}

func TestShortestPathSameStartAndEnd(t *testing.T) {
	g := warehouseNetwork()

	for _, loc := range []string{"Warehouse", "Customer2", "not-in-graph"} {
		got, err := ShortestPath(g, loc, loc, truck)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", loc, err)
		}
		if !slices.Equal(got.Path, []string{loc}) || got.Distance != 0 {
			t.Fatalf("%s: got %+v, want single-node zero-distance path", loc, got)
		}
	}
}

func TestShortestPathAllEdgesForbidden(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddRoute("A", "B", 5, domain.NewClassSet(domain.Bike))
	g.AddRoute("B", "C", 5, 0)
	g.AddRoute("A", "C", 20, domain.NewClassSet(domain.Bike, domain.Truck))

	_, err := ShortestPath(g, "A", "C", bike)
	var ue *domain.UnreachableError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UnreachableError", err)
	}
	if ue.Class != domain.Bike || ue.Start != "A" || ue.End != "C" {
		t.Fatalf("unreachable error = %+v", ue)
	}
	if !errors.Is(err, domain.ErrNoRoute) {
		t.Fatal("unreachable error should match ErrNoRoute")
	}

	got, err := ShortestPath(g, "A", "C", van)
	if err != nil {
		t.Fatalf("van should reach C: %v", err)
	}
	if got.Distance != 10 {
		t.Fatalf("van distance = %g, want 10", got.Distance)
	}
}

func TestShortestPathUnknownEndpoints(t *testing.T) {
	g := warehouseNetwork()

	if _, err := ShortestPath(g, "Warehouse", "Atlantis", van); !errors.Is(err, domain.ErrNoRoute) {
		t.Fatalf("err = %v, want ErrNoRoute", err)
	}
	if _, err := ShortestPath(g, "Atlantis", "Warehouse", van); !errors.Is(err, domain.ErrNoRoute) {
		t.Fatalf("err = %v, want ErrNoRoute", err)
	}
}

func TestShortestPathNegativeDistanceFailsFast(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddRoute("A", "B", -1, 0)

	if _, err := ShortestPath(g, "A", "B", van); !errors.Is(err, domain.ErrInvalidDistance) {
		t.Fatalf("err = %v, want ErrInvalidDistance", err)
	}
}

func TestShortestPathNonFiniteDistanceFailsFast(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1)} {
		g := domain.NewRouteGraph()
		g.AddRoute("A", "B", bad, 0)
		g.AddRoute("A", "C", 1, 0)
		g.AddRoute("C", "B", 1, 0)

		got, err := ShortestPath(g, "A", "B", van)
		if !errors.Is(err, domain.ErrInvalidDistance) {
			t.Fatalf("distance %g: got %+v err=%v, want ErrInvalidDistance", bad, got, err)
		}
	}
}

func TestShortestPathSettlesTargetNotFirstReach(t *testing.T) {
	// B is reached first through the expensive direct edge but must settle via C.
	g := domain.NewRouteGraph()
	g.AddRoute("A", "B", 100, 0)
	g.AddRoute("A", "C", 1, 0)
	g.AddRoute("C", "B", 1, 0)

	got, err := ShortestPath(g, "A", "B", van)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Distance != 2 || !slices.Equal(got.Path, []string{"A", "C", "B"}) {
		t.Fatalf("got %+v", got)
	}
}

func TestShortestPathParallelShorterEdge(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for iter := 0; iter < 200; iter++ {
		g, specs := randomNetwork(rng, 6, 9)
		from := fmt.Sprintf("L%d", rng.IntN(6))
		to := fmt.Sprintf("L%d", rng.IntN(6))

		before := make(map[domain.VehicleClass]float64)
		for _, c := range domain.VehicleClasses() {
			before[c] = searchDistance(g, from, to, c)
		}

		// add a shorter parallel copy of an existing route, forbidden to one class
		base := specs[rng.IntN(len(specs))]
		banned := domain.VehicleClasses()[rng.IntN(3)]
		shorter := base.Distance / 2
		g.AddRoute(base.From, base.To, shorter, domain.NewClassSet(banned))

		for _, c := range domain.VehicleClasses() {
			after := searchDistance(g, from, to, c)
			if c == banned && after != before[c] {
				t.Fatalf("iter %d: class %s not eligible for new edge but distance changed %g -> %g", iter, c, before[c], after)
			}
			if after > before[c] {
				t.Fatalf("iter %d: class %s distance increased %g -> %g", iter, c, before[c], after)
			}
		}
	}
}

func TestShortestPathMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for iter := 0; iter < 300; iter++ {
		nodes := 3 + rng.IntN(4)
		g, _ := randomNetwork(rng, nodes, rng.IntN(nodes*2)+1)
		start := fmt.Sprintf("L%d", rng.IntN(nodes))
		end := fmt.Sprintf("L%d", rng.IntN(nodes))

		for _, c := range domain.VehicleClasses() {
			v := domain.Vehicle{ID: "v", Capacity: 1, Class: c}
			want := bruteForceDistance(g, start, end, c)

			got, err := ShortestPath(g, start, end, v)
			if math.IsInf(want, 1) {
				if !errors.Is(err, domain.ErrNoRoute) {
					t.Fatalf("iter %d class %s %s->%s: want unreachable, got %+v err=%v", iter, c, start, end, got, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("iter %d class %s %s->%s: unexpected error: %v", iter, c, start, end, err)
			}
			if got.Distance != want {
				t.Fatalf("iter %d class %s %s->%s: distance = %g, brute force = %g", iter, c, start, end, got.Distance, want)
			}
			if cost := pathCost(g, got.Path, c); cost != got.Distance {
				t.Fatalf("iter %d: path %v costs %g but reported %g", iter, got.Path, cost, got.Distance)
			}
			if got.Path[0] != start || got.Path[len(got.Path)-1] != end {
				t.Fatalf("iter %d: path %v does not run %s->%s", iter, got.Path, start, end)
			}
		}
	}
}

func TestShortestPathConcurrentSearches(t *testing.T) {
	g := warehouseNetwork()

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ShortestPath(g, "Warehouse", "Customer1", truck)
			if err != nil {
				errs <- err
				return
			}
			if got.Distance != 35 {
				errs <- fmt.Errorf("distance = %g, want 35", got.Distance)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}

// randomNetwork builds a graph with integer-valued distances so sums compare exactly.
func randomNetwork(rng *rand.Rand, nodes, edges int) (*domain.RouteGraph, []domain.RouteSpec) {
	g := domain.NewRouteGraph()
	specs := make([]domain.RouteSpec, 0, edges)
	for i := 0; i < edges; i++ {
		var forbidden domain.ClassSet
		for _, c := range domain.VehicleClasses() {
			if rng.IntN(4) == 0 {
				forbidden |= domain.NewClassSet(c)
			}
		}
		r := domain.RouteSpec{
			From:      fmt.Sprintf("L%d", rng.IntN(nodes)),
			To:        fmt.Sprintf("L%d", rng.IntN(nodes)),
			Distance:  float64(rng.IntN(20)),
			Forbidden: forbidden,
		}
		g.AddRoute(r.From, r.To, r.Distance, r.Forbidden)
		specs = append(specs, r)
	}
	return g, specs
}

func searchDistance(g *domain.RouteGraph, from, to string, c domain.VehicleClass) float64 {
	res, err := ShortestPath(g, from, to, domain.Vehicle{ID: "v", Capacity: 1, Class: c})
	if err != nil {
		return math.Inf(1)
	}
	return res.Distance
}

// bruteForceDistance enumerates every simple path over eligible segments.
func bruteForceDistance(g *domain.RouteGraph, start, end string, c domain.VehicleClass) float64 {
	if start == end {
		return 0
	}
	best := math.Inf(1)
	visited := map[string]bool{start: true}

	var walk func(at string, dist float64)
	walk = func(at string, dist float64) {
		if at == end {
			best = min(best, dist)
			return
		}
		for _, seg := range g.Neighbors(at) {
			if !c.CanTraverse(seg.Forbidden) || visited[seg.To] {
				continue
			}
			visited[seg.To] = true
			walk(seg.To, dist+seg.Distance)
			visited[seg.To] = false
		}
	}
	walk(start, 0)
	return best
}

// pathCost sums the cheapest eligible segment between each consecutive pair.
func pathCost(g *domain.RouteGraph, path []string, c domain.VehicleClass) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		hop := math.Inf(1)
		for _, seg := range g.Neighbors(path[i]) {
			if seg.To == path[i+1] && c.CanTraverse(seg.Forbidden) {
				hop = min(hop, seg.Distance)
			}
		}
		total += hop
	}
	return total
}
