package ports

import (
	"context"
	"warehouse-shipping-service/internal/domain"
)

// Port: a boundary for retrieving the route network configuration.
type RouteSource interface {
	// Retrieve every configured route in declaration order.
	ListRoutes(ctx context.Context) ([]domain.RouteSpec, error)
}

// Port: a boundary for retrieving the vehicles available for dispatch.
type FleetSource interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}
