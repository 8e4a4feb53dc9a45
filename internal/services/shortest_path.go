package services

import (
	"container/heap"
	"fmt"
	"slices"
	"warehouse-shipping-service/internal/domain"
)

// Network is the read-only view of the route graph the search needs.
// *domain.RouteGraph satisfies it.
type Network interface {
	Neighbors(location string) []domain.RouteSegment
}

// ShortestPath finds the minimum-distance path from start to end using only
// segments the vehicle may traverse.
//
// Dijkstra over a binary heap with lazy deletion: improved candidates are
// pushed again and stale entries are skipped once their location is settled.
// The search stops as soon as end is settled. When the frontier drains first
// the result is a *domain.UnreachableError.
//
// The function keeps no state between calls and is safe to run concurrently
// over a graph that is no longer being built.
func ShortestPath(
	network Network,
	start string,
	end string,
	vehicle domain.Vehicle,
) (domain.PathResult, error) {
	if start == end {
		return domain.PathResult{Path: []string{start}, Distance: 0}, nil
	}

	best := map[string]float64{start: 0}
	previous := make(map[string]string)
	settled := make(map[string]struct{})

	pq := &frontier{}
	heap.Push(pq, frontierItem{location: start, distance: 0})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(frontierItem)

		if _, ok := settled[current.location]; ok {
			continue
		}
		settled[current.location] = struct{}{}

		if current.location == end {
			return domain.PathResult{
				Path:     reconstructPath(previous, start, end),
				Distance: current.distance,
			}, nil
		}

		for _, seg := range network.Neighbors(current.location) {
			if !domain.ValidDistance(seg.Distance) {
				return domain.PathResult{}, fmt.Errorf(
					"shortest path: segment %q -> %q distance=%g: %w",
					seg.From, seg.To, seg.Distance, domain.ErrInvalidDistance,
				)
			}
			if !vehicle.CanTraverse(seg.Forbidden) {
				continue
			}
			if _, ok := settled[seg.To]; ok {
				continue
			}

			candidate := current.distance + seg.Distance
			if d, ok := best[seg.To]; ok && candidate >= d {
				continue
			}

			best[seg.To] = candidate
			previous[seg.To] = current.location
			heap.Push(pq, frontierItem{location: seg.To, distance: candidate})
		}
	}

	return domain.PathResult{}, &domain.UnreachableError{Class: vehicle.Class, Start: start, End: end}
}

// reconstructPath walks predecessor links back from end and reverses them.
func reconstructPath(previous map[string]string, start, end string) []string {
	path := []string{end}
	for cur := end; cur != start; {
		cur = previous[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
