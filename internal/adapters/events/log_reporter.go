package events

import (
	"context"
	"log"
	"strings"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/obs"
)

// LogReporter writes one key=value line per order attempt.
type LogReporter struct {
	Logger *log.Logger
}

func NewLogReporter(l *log.Logger) *LogReporter {
	return &LogReporter{Logger: l}
}

func (r *LogReporter) Report(ctx context.Context, evt domain.DispatchEvent) error {
	printf := log.Printf
	if r.Logger != nil {
		printf = r.Logger.Printf
	}

	if evt.Outcome == domain.OutcomeDispatched {
		printf("req_id=%s dispatch_id=%s outcome=%s item=%q qty=%d vehicle=%s dest=%q weight_kg=%g distance=%g path=%q",
			obs.RequestID(ctx), evt.DispatchID, evt.Outcome, evt.Item, evt.Quantity, evt.VehicleID,
			evt.Destination, evt.TotalWeight, evt.Distance, strings.Join(evt.Path, " -> "))
		return nil
	}

	printf("req_id=%s dispatch_id=%s outcome=%s item=%q qty=%d vehicle=%s dest=%q reason=%q",
		obs.RequestID(ctx), evt.DispatchID, evt.Outcome, evt.Item, evt.Quantity, evt.VehicleID,
		evt.Destination, evt.Reason)
	return nil
}
