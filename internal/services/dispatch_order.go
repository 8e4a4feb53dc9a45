package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/obs"
	"warehouse-shipping-service/internal/ports"

	"github.com/google/uuid"
)

// Optional extension of Network that can tell whether a location exists.
type Locator interface {
	HasLocation(location string) bool
}

type DispatchOrderRequest struct {
	Item        string
	Quantity    int
	Origin      string
	Destination string
	Vehicle     domain.Vehicle
}

// DispatchOrder turns an order into a committed shipment.
//
// The steps run in a fixed order: item weight lookup, capacity check,
// reservation, then routing. A load that does not fit never reaches the
// ledger or the graph. If routing fails after stock was reserved the
// reservation is released so an unroutable order consumes nothing.
// Every attempt is reported to reporter, which may be nil.
func DispatchOrder(
	ctx context.Context,
	req DispatchOrderRequest,
	network Network,
	ledger ports.InventoryLedger,
	reporter ports.DispatchReporter,
) (_ *domain.Dispatch, err error) {
	defer obs.Time(ctx, "dispatch.order")(&err)

	id := uuid.NewString()
	evt := domain.DispatchEvent{
		DispatchID:  id,
		Item:        req.Item,
		Quantity:    req.Quantity,
		VehicleID:   req.Vehicle.ID,
		Destination: req.Destination,
	}
	defer func() {
		evt.Outcome = domain.OutcomeOf(err)
		evt.At = time.Now().UTC()
		if err != nil {
			evt.Reason = err.Error()
		}
		report(ctx, reporter, evt)
	}()

	item := strings.TrimSpace(req.Item)
	if item == "" {
		return nil, fmt.Errorf("dispatch order: %w", domain.ErrItemNotFound)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("dispatch order: quantity=%d: %w", req.Quantity, domain.ErrInvalidQuantity)
	}

	unitWeight, err := ledger.ItemWeight(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("dispatch order: item weight %q: %w", item, err)
	}

	total, err := CheckLoad(req.Vehicle, unitWeight, req.Quantity)
	evt.TotalWeight = total
	if err != nil {
		return nil, fmt.Errorf("dispatch order: %w", err)
	}

	if loc, ok := network.(Locator); ok && req.Origin != req.Destination {
		for _, l := range []string{req.Origin, req.Destination} {
			if !loc.HasLocation(l) {
				return nil, fmt.Errorf("dispatch order: location %q: %w", l, domain.ErrLocationNotFound)
			}
		}
	}

	if err := ledger.Reserve(ctx, item, req.Quantity); err != nil {
		return nil, fmt.Errorf("dispatch order: reserve %d of %q: %w", req.Quantity, item, err)
	}

	route, err := FindRoute(network, req.Origin, req.Destination, req.Vehicle)
	if err != nil {
		if rerr := ledger.Release(ctx, item, req.Quantity); rerr != nil {
			log.Printf("dispatch release failed: dispatch_id=%s item=%q qty=%d err=%v", id, item, req.Quantity, rerr)
		}
		return nil, fmt.Errorf("dispatch order: %w", err)
	}

	evt.Distance = route.Distance
	evt.Path = route.Path

	return &domain.Dispatch{
		ID:       id,
		Item:     item,
		Quantity: req.Quantity,
		Shipment: domain.Shipment{
			VehicleID:   req.Vehicle.ID,
			Class:       req.Vehicle.Class,
			Origin:      req.Origin,
			Destination: req.Destination,
			TotalWeight: total,
			Route:       route,
		},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Reporting is best effort; a failed report never fails the order.
func report(ctx context.Context, reporter ports.DispatchReporter, evt domain.DispatchEvent) {
	if reporter == nil {
		return
	}
	if err := reporter.Report(ctx, evt); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("dispatch report failed: dispatch_id=%s outcome=%s err=%v", evt.DispatchID, evt.Outcome, err)
	}
}
