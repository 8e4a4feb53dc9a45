package ports

import (
	"context"
	"warehouse-shipping-service/internal/domain"
)

// Port: the inventory ledger the core collaborates with when dispatching orders.
//
// Implementations must make Reserve atomic per item so concurrent orders
// cannot both consume the same stock.
type InventoryLedger interface {
	// Return the per-unit weight of an item, or domain.ErrItemNotFound.
	ItemWeight(ctx context.Context, name string) (float64, error)
	// Decrement stock by quantity. Fails with domain.ErrInsufficientStock
	// or domain.ErrItemNotFound and leaves stock untouched.
	Reserve(ctx context.Context, name string, quantity int) error
	// Return previously reserved stock.
	Release(ctx context.Context, name string, quantity int) error
}

// Optional extension of InventoryLedger that can enumerate its items.
type InventoryLister interface {
	// Return all items ordered by name.
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// Optional extension used for seeding ledgers.
type InventoryWriter interface {
	// Insert an item or replace the existing entry with the same name.
	PutItem(ctx context.Context, item domain.Item) error
	// Insert an item only when no entry with that name exists. Existing
	// stock is left as is. Reports whether the item was inserted.
	AddItem(ctx context.Context, item domain.Item) (bool, error)
}
