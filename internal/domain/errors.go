package domain

import (
	"errors"
	"fmt"
)

// Not-found outcomes.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrUnknownVehicle   = errors.New("unknown vehicle")
)

// Order outcomes that are not faults: the order is simply not dispatchable.
var (
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNoRoute           = errors.New("no available route")
)

// Precondition violations. These are configuration or caller errors and
// are never retried.
var (
	ErrInvalidDistance     = errors.New("invalid distance")
	ErrInvalidCapacity     = errors.New("invalid capacity")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidLocation     = errors.New("invalid location")
	ErrInvalidWeight       = errors.New("invalid weight")
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")
)

// CapacityExceededError reports a consignment heavier than the chosen vehicle allows.
type CapacityExceededError struct {
	VehicleID   string
	TotalWeight float64
	Capacity    float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"order exceeds the vehicle's capacity: total weight %gkg, vehicle %s capacity %gkg",
		e.TotalWeight, e.VehicleID, e.Capacity,
	)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// UnreachableError reports that no eligible edges connect start to end for a class.
type UnreachableError struct {
	Class VehicleClass
	Start string
	End   string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("no available route for %s from %s to %s", e.Class, e.Start, e.End)
}

func (e *UnreachableError) Unwrap() error { return ErrNoRoute }
