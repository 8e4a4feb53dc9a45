package services

import (
	"context"
	"fmt"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/obs"
	"warehouse-shipping-service/internal/ports"
)

// BuildRouteGraph loads every route from src and adds it to a fresh graph.
// Routes are validated first; a single bad route aborts the build since a
// partially built network would silently produce wrong answers.
func BuildRouteGraph(ctx context.Context, src ports.RouteSource) (_ *domain.RouteGraph, err error) {
	defer obs.Time(ctx, "network.build")(&err)

	specs, err := src.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("build route graph: list routes: %w", err)
	}

	g := domain.NewRouteGraph()
	for i, r := range specs {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("build route graph: route #%d: %w", i+1, err)
		}
		g.AddRoute(r.From, r.To, r.Distance, r.Forbidden)
	}

	return g, nil
}

// BuildFleet loads the vehicles from src, falling back to the default fleet
// when the source declares none.
func BuildFleet(ctx context.Context, src ports.FleetSource) (*domain.Fleet, error) {
	vehicles, err := src.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("build fleet: list vehicles: %w", err)
	}
	if len(vehicles) == 0 {
		return domain.DefaultFleet(), nil
	}

	fleet, err := domain.NewFleet(vehicles)
	if err != nil {
		return nil, fmt.Errorf("build fleet: %w", err)
	}
	return fleet, nil
}
