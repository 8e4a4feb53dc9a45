package ledger

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"warehouse-shipping-service/internal/domain"
)

// MemoryLedger is an in-process inventory ledger guarded by a mutex.
// It is the default for tests and for LEDGER_BACKEND=memory.
type MemoryLedger struct {
	mu    sync.Mutex
	items map[string]domain.Item
}

func NewMemoryLedger(items []domain.Item) *MemoryLedger {
	m := make(map[string]domain.Item, len(items))
	for _, it := range items {
		m[it.Name] = it
	}
	return &MemoryLedger{items: m}
}

func (l *MemoryLedger) ItemWeight(ctx context.Context, name string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[name]
	if !ok {
		return 0, fmt.Errorf("memory ledger: %q: %w", name, domain.ErrItemNotFound)
	}
	return it.UnitWeight, nil
}

func (l *MemoryLedger) Reserve(ctx context.Context, name string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("memory ledger: reserve quantity=%d: %w", quantity, domain.ErrInvalidQuantity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[name]
	if !ok {
		return fmt.Errorf("memory ledger: %q: %w", name, domain.ErrItemNotFound)
	}
	if it.Quantity < quantity {
		return fmt.Errorf("memory ledger: %q has %d, want %d: %w", name, it.Quantity, quantity, domain.ErrInsufficientStock)
	}
	it.Quantity -= quantity
	l.items[name] = it
	return nil
}

func (l *MemoryLedger) Release(ctx context.Context, name string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("memory ledger: release quantity=%d: %w", quantity, domain.ErrInvalidQuantity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[name]
	if !ok {
		return fmt.Errorf("memory ledger: %q: %w", name, domain.ErrItemNotFound)
	}
	it.Quantity += quantity
	l.items[name] = it
	return nil
}

func (l *MemoryLedger) ListItems(ctx context.Context) ([]domain.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Item, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b domain.Item) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (l *MemoryLedger) PutItem(ctx context.Context, item domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("memory ledger: put item: %w", err)
	}

	item.Name = strings.TrimSpace(item.Name)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.items[item.Name] = item
	return nil
}

func (l *MemoryLedger) AddItem(ctx context.Context, item domain.Item) (bool, error) {
	if err := item.Validate(); err != nil {
		return false, fmt.Errorf("memory ledger: add item: %w", err)
	}

	item.Name = strings.TrimSpace(item.Name)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.items[item.Name]; ok {
		return false, nil
	}
	l.items[item.Name] = item
	return true, nil
}
