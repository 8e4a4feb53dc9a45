package events

import (
	"context"
	"errors"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/ports"
)

// MultiReporter fans an event out to every reporter. All reporters run even
// when one fails; the failures are joined.
type MultiReporter []ports.DispatchReporter

func (m MultiReporter) Report(ctx context.Context, evt domain.DispatchEvent) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Report(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
