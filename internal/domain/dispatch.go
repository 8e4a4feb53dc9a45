package domain

import (
	"errors"
	"time"
)

// Shipment is a load that fits its vehicle together with the route it will take.
type Shipment struct {
	VehicleID   string
	Class       VehicleClass
	Origin      string
	Destination string
	TotalWeight float64
	Route       PathResult
}

// Dispatch is a shipment committed against the inventory ledger.
type Dispatch struct {
	ID        string
	Item      string
	Quantity  int
	Shipment  Shipment
	CreatedAt time.Time
}

type DispatchOutcome string

const (
	OutcomeDispatched        DispatchOutcome = "dispatched"
	OutcomeItemNotFound      DispatchOutcome = "item_not_found"
	OutcomeLocationNotFound  DispatchOutcome = "location_not_found"
	OutcomeCapacityExceeded  DispatchOutcome = "capacity_exceeded"
	OutcomeInsufficientStock DispatchOutcome = "insufficient_stock"
	OutcomeUnreachable       DispatchOutcome = "unreachable"
	OutcomeInvalid           DispatchOutcome = "invalid"
	OutcomeFailed            DispatchOutcome = "failed"
)

// OutcomeOf classifies an order error. A nil error is a successful dispatch.
func OutcomeOf(err error) DispatchOutcome {
	switch {
	case err == nil:
		return OutcomeDispatched
	case errors.Is(err, ErrItemNotFound):
		return OutcomeItemNotFound
	case errors.Is(err, ErrLocationNotFound):
		return OutcomeLocationNotFound
	case errors.Is(err, ErrCapacityExceeded):
		return OutcomeCapacityExceeded
	case errors.Is(err, ErrInsufficientStock):
		return OutcomeInsufficientStock
	case errors.Is(err, ErrNoRoute):
		return OutcomeUnreachable
	case errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidWeight),
		errors.Is(err, ErrInvalidCapacity),
		errors.Is(err, ErrInvalidDistance),
		errors.Is(err, ErrInvalidLocation),
		errors.Is(err, ErrUnknownVehicle),
		errors.Is(err, ErrUnknownVehicleClass):
		return OutcomeInvalid
	}
	return OutcomeFailed
}

// DispatchEvent is what the core reports to its environment after every order attempt.
type DispatchEvent struct {
	DispatchID  string
	Outcome     DispatchOutcome
	Item        string
	Quantity    int
	VehicleID   string
	Destination string
	TotalWeight float64
	Distance    float64
	Path        []string
	Reason      string
	At          time.Time
}
