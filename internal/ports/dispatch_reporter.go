package ports

import (
	"context"
	"warehouse-shipping-service/internal/domain"
)

// Port: receives the outcome of every order attempt, successful or not.
type DispatchReporter interface {
	Report(ctx context.Context, evt domain.DispatchEvent) error
}
