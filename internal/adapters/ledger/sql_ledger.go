package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"warehouse-shipping-service/internal/adapters/repositories"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/obs"
)

// SQLLedger is a database/sql backed inventory ledger over the inventory table.
// The same code serves SQLite and Postgres; only placeholders differ.
//
// Reserve is a single conditional UPDATE, so concurrent orders for the same
// item serialize in the database and never oversell.
type SQLLedger struct {
	DB      *sql.DB
	Dialect repositories.Dialect
}

func NewSQLLedger(db *sql.DB, dialect repositories.Dialect) *SQLLedger {
	return &SQLLedger{DB: db, Dialect: dialect}
}

func (s *SQLLedger) ItemWeight(ctx context.Context, name string) (_ float64, err error) {
	defer obs.Time(ctx, "ledger.sql.ItemWeight")(&err)

	if s.DB == nil {
		return 0, errors.New("sql ledger: db is nil")
	}

	q := fmt.Sprintf(`
	SELECT unit_weight
    FROM inventory
    WHERE name = %s;
	`, s.Dialect.Bind(1))

	var weight float64
	if err := s.DB.QueryRowContext(ctx, q, name).Scan(&weight); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("item weight %q: %w", name, domain.ErrItemNotFound)
		}
		return 0, fmt.Errorf("item weight %q: query inventory table: %w", name, err)
	}

	return weight, nil
}

func (s *SQLLedger) Reserve(ctx context.Context, name string, quantity int) (err error) {
	defer obs.Time(ctx, "ledger.sql.Reserve")(&err)

	if s.DB == nil {
		return errors.New("sql ledger: db is nil")
	}
	if quantity <= 0 {
		return fmt.Errorf("reserve %q: quantity=%d: %w", name, quantity, domain.ErrInvalidQuantity)
	}

	q := fmt.Sprintf(`
	UPDATE inventory
    SET quantity = quantity - %s
    WHERE name = %s
        AND quantity >= %s;
	`, s.Dialect.Bind(1), s.Dialect.Bind(2), s.Dialect.Bind(3))

	res, err := s.DB.ExecContext(ctx, q, quantity, name, quantity)
	if err != nil {
		return fmt.Errorf("reserve %q: update inventory table: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve %q: rows affected: %w", name, err)
	}
	if n == 1 {
		return nil
	}

	// Nothing updated: tell a missing item apart from short stock.
	onHand, err := s.quantity(ctx, name)
	if err != nil {
		return fmt.Errorf("reserve %q: %w", name, err)
	}
	return fmt.Errorf("reserve %q: have %d, want %d: %w", name, onHand, quantity, domain.ErrInsufficientStock)
}

func (s *SQLLedger) Release(ctx context.Context, name string, quantity int) error {
	if s.DB == nil {
		return errors.New("sql ledger: db is nil")
	}
	if quantity <= 0 {
		return fmt.Errorf("release %q: quantity=%d: %w", name, quantity, domain.ErrInvalidQuantity)
	}

	q := fmt.Sprintf(`
	UPDATE inventory
    SET quantity = quantity + %s
    WHERE name = %s;
	`, s.Dialect.Bind(1), s.Dialect.Bind(2))

	res, err := s.DB.ExecContext(ctx, q, quantity, name)
	if err != nil {
		return fmt.Errorf("release %q: update inventory table: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("release %q: %w", name, domain.ErrItemNotFound)
	}

	return nil
}

// Return all inventory items ordered by name.
func (s *SQLLedger) ListItems(ctx context.Context) ([]domain.Item, error) {
	if s.DB == nil {
		return nil, errors.New("sql ledger: db is nil")
	}

	query := `
	SELECT
		name,
		quantity,
		unit_weight,
		category
	FROM inventory
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: query inventory table: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0, 16)
	for rows.Next() {
		var it domain.Item
		var category string
		if err := rows.Scan(&it.Name, &it.Quantity, &it.UnitWeight, &category); err != nil {
			return nil, fmt.Errorf("list items: scan row: %w", err)
		}
		it.Category = domain.ItemCategory(category)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: row iteration: %w", err)
	}

	return items, nil
}

// Insert an item or replace the stock entry with the same name.
func (s *SQLLedger) PutItem(ctx context.Context, item domain.Item) error {
	if s.DB == nil {
		return errors.New("sql ledger: db is nil")
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("put item: %w", err)
	}

	q := fmt.Sprintf(`
	INSERT INTO inventory (name, quantity, unit_weight, category)
    VALUES (%s, %s, %s, %s)
	ON CONFLICT (name) DO UPDATE
	SET quantity = excluded.quantity,
		unit_weight = excluded.unit_weight,
		category = excluded.category;
	`, s.Dialect.Bind(1), s.Dialect.Bind(2), s.Dialect.Bind(3), s.Dialect.Bind(4))

	name := strings.TrimSpace(item.Name)
	if _, err := s.DB.ExecContext(ctx, q, name, item.Quantity, item.UnitWeight, string(item.Category)); err != nil {
		return fmt.Errorf("put item %q: %w", name, err)
	}

	return nil
}

// Insert an item unless the name is already stocked.
func (s *SQLLedger) AddItem(ctx context.Context, item domain.Item) (bool, error) {
	if s.DB == nil {
		return false, errors.New("sql ledger: db is nil")
	}
	if err := item.Validate(); err != nil {
		return false, fmt.Errorf("add item: %w", err)
	}

	q := fmt.Sprintf(`
	INSERT INTO inventory (name, quantity, unit_weight, category)
    VALUES (%s, %s, %s, %s)
	ON CONFLICT (name) DO NOTHING;
	`, s.Dialect.Bind(1), s.Dialect.Bind(2), s.Dialect.Bind(3), s.Dialect.Bind(4))

	name := strings.TrimSpace(item.Name)
	res, err := s.DB.ExecContext(ctx, q, name, item.Quantity, item.UnitWeight, string(item.Category))
	if err != nil {
		return false, fmt.Errorf("add item %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add item %q: %w", name, err)
	}

	return n == 1, nil
}

func (s *SQLLedger) quantity(ctx context.Context, name string) (int, error) {
	q := fmt.Sprintf(`SELECT quantity FROM inventory WHERE name = %s;`, s.Dialect.Bind(1))

	var n int
	if err := s.DB.QueryRowContext(ctx, q, name).Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrItemNotFound
		}
		return 0, fmt.Errorf("query inventory quantity: %w", err)
	}
	return n, nil
}
