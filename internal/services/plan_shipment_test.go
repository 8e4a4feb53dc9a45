package services

import (
	"context"
	"errors"
	"testing"
	"warehouse-shipping-service/internal/domain"
)

func TestCheckLoad(t *testing.T) {
	total, err := CheckLoad(van, 2.5, 200)
	if err != nil || total != 500 {
		t.Fatalf("exact capacity: total=%g err=%v", total, err)
	}

	total, err = CheckLoad(van, 2.5, 201)
	var ce *domain.CapacityExceededError
	if !errors.As(err, &ce) || !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want capacity exceeded", err)
	}
	if total != 502.5 || ce.TotalWeight != 502.5 || ce.VehicleID != "VAN456" {
		t.Fatalf("total=%g error=%+v", total, ce)
	}

	if _, err := CheckLoad(van, 1, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("err = %v, want ErrInvalidQuantity", err)
	}
	if _, err := CheckLoad(van, -1, 1); !errors.Is(err, domain.ErrInvalidWeight) {
		t.Fatalf("err = %v, want ErrInvalidWeight", err)
	}
	if _, err := CheckLoad(domain.Vehicle{ID: "X", Capacity: 0, Class: domain.Van}, 1, 1); !errors.Is(err, domain.ErrInvalidCapacity) {
		t.Fatalf("err = %v, want ErrInvalidCapacity", err)
	}
}

func TestPlanShipmentChecksLoadBeforeSearching(t *testing.T) {
	net := islandNetwork()

	_, err := PlanShipment(net, "Warehouse", "Customer2", bike, 50, 1)
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	if net.neighborCalls != 0 {
		t.Fatalf("graph searched %d times before capacity check", net.neighborCalls)
	}

	s, err := PlanShipment(net, "Warehouse", "Customer2", bike, 0.2, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalWeight != 20 || s.Route.Distance != 20 || s.Class != domain.Bike {
		t.Fatalf("shipment = %+v", s)
	}
}

func TestPlanShipmentUnreachable(t *testing.T) {
	_, err := PlanShipment(islandNetwork(), "Warehouse", "Lighthouse", truck, 1, 1)
	var ue *domain.UnreachableError
	if !errors.As(err, &ue) || ue.Class != domain.Truck {
		t.Fatalf("err = %v, want truck unreachable", err)
	}
}

type staticRoutes []domain.RouteSpec

func (s staticRoutes) ListRoutes(context.Context) ([]domain.RouteSpec, error) { return s, nil }

type staticFleet []domain.Vehicle

func (s staticFleet) ListVehicles(context.Context) ([]domain.Vehicle, error) { return s, nil }

func TestBuildRouteGraph(t *testing.T) {
	g, err := BuildRouteGraph(context.Background(), staticRoutes{
		{From: "Warehouse", To: "Customer1", Distance: 10, Forbidden: domain.NewClassSet(domain.Truck)},
		{From: "Warehouse", To: "Customer2", Distance: 20},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.SegmentCount() != 4 || !g.HasLocation("Customer2") {
		t.Fatalf("graph: segments=%d locations=%v", g.SegmentCount(), g.Locations())
	}

	_, err = BuildRouteGraph(context.Background(), staticRoutes{{From: "A", To: "B", Distance: -1}})
	if !errors.Is(err, domain.ErrInvalidDistance) {
		t.Fatalf("err = %v, want ErrInvalidDistance", err)
	}
}

func TestBuildFleet(t *testing.T) {
	f, err := BuildFleet(context.Background(), staticFleet(nil))
	if err != nil || f.Len() != domain.DefaultFleet().Len() {
		t.Fatalf("empty source should give default fleet: %v", err)
	}

	f, err = BuildFleet(context.Background(), staticFleet{van})
	if err != nil || f.Len() != 1 {
		t.Fatalf("fleet len=%d err=%v", f.Len(), err)
	}

	if _, err := BuildFleet(context.Background(), staticFleet{van, van}); err == nil {
		t.Fatal("duplicate ids should be rejected")
	}
}

func TestPlanShipmentUnknownLocation(t *testing.T) {
	net := islandNetwork()

	_, err := PlanShipment(net, "Warehouse", "Atlantis", van, 2.5, 1)
	if !errors.Is(err, domain.ErrLocationNotFound) {
		t.Fatalf("err = %v, want ErrLocationNotFound", err)
	}
	if net.neighborCalls != 0 {
		t.Fatalf("graph searched %d times for an unknown destination", net.neighborCalls)
	}

	// An overweight load still fails on capacity first.
	_, err = PlanShipment(net, "Warehouse", "Atlantis", bike, 50, 1)
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
}
