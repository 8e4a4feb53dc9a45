package services

import (
	"fmt"
	"warehouse-shipping-service/internal/domain"
)

// CheckLoad computes quantity * unitWeight and verifies it fits the vehicle.
// On failure the error is a *domain.CapacityExceededError carrying both values.
func CheckLoad(vehicle domain.Vehicle, unitWeight float64, quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("check load: quantity=%d: %w", quantity, domain.ErrInvalidQuantity)
	}
	if unitWeight < 0 {
		return 0, fmt.Errorf("check load: unit weight=%g: %w", unitWeight, domain.ErrInvalidWeight)
	}
	if err := vehicle.Validate(); err != nil {
		return 0, fmt.Errorf("check load: %w", err)
	}

	total := float64(quantity) * unitWeight
	if !vehicle.CanCarry(total) {
		return total, &domain.CapacityExceededError{
			VehicleID:   vehicle.ID,
			TotalWeight: total,
			Capacity:    vehicle.Capacity,
		}
	}
	return total, nil
}

// PlanShipment is the pure core entry point: it takes already-parsed values,
// checks the load against the vehicle, then that both endpoints exist, and
// only then searches the network.
// It never touches an inventory ledger.
func PlanShipment(
	network Network,
	origin string,
	destination string,
	vehicle domain.Vehicle,
	unitWeight float64,
	quantity int,
) (domain.Shipment, error) {
	total, err := CheckLoad(vehicle, unitWeight, quantity)
	if err != nil {
		return domain.Shipment{}, err
	}

	if loc, ok := network.(Locator); ok && origin != destination {
		for _, l := range []string{origin, destination} {
			if !loc.HasLocation(l) {
				return domain.Shipment{}, fmt.Errorf("plan shipment: location %q: %w", l, domain.ErrLocationNotFound)
			}
		}
	}

	route, err := FindRoute(network, origin, destination, vehicle)
	if err != nil {
		return domain.Shipment{}, err
	}

	return domain.Shipment{
		VehicleID:   vehicle.ID,
		Class:       vehicle.Class,
		Origin:      origin,
		Destination: destination,
		TotalWeight: total,
		Route:       route,
	}, nil
}
