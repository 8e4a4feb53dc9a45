package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/ports"
)

// Initialize the database schema. The DDL is portable between SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createInventoryQuery := `
	CREATE TABLE IF NOT EXISTS inventory (
		name TEXT PRIMARY KEY,
		quantity INTEGER NOT NULL CHECK (quantity >= 0),
		unit_weight DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL DEFAULT ''
	);
	`

	createRouteSegmentsQuery := `
	CREATE TABLE IF NOT EXISTS route_segments (
        seq INTEGER PRIMARY KEY,
        from_location TEXT NOT NULL,
        to_location TEXT NOT NULL,
        distance DOUBLE PRECISION NOT NULL CHECK (distance >= 0),
        forbidden TEXT NOT NULL DEFAULT ''
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_segments_from_to
    ON route_segments(from_location, to_location);
	`

	statements := []string{
		createInventoryQuery,
		createRouteSegmentsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ItemSeed struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitWeight float64 `json:"unit_weight"`
	Category   string  `json:"category"`
}

// Read an inventory seed file and validate every entry.
func LoadInventorySeed(jsonPath string) ([]domain.Item, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed inventory: read %q: %w", jsonPath, err)
	}

	var data []ItemSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed inventory: parse json: %w", err)
	}

	items := make([]domain.Item, 0, len(data))
	for i, s := range data {
		category, err := domain.ParseItemCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("seed inventory: item at index %d: %w", i+1, err)
		}

		it := domain.Item{
			Name:       strings.TrimSpace(s.Name),
			Quantity:   s.Quantity,
			UnitWeight: s.UnitWeight,
			Category:   category,
		}
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("seed inventory: item at index %d: %w", i+1, err)
		}
		items = append(items, it)
	}

	return items, nil
}

// Populate an inventory ledger with item data from a JSON file and return
// how many items were written. Without replace, items already in the ledger
// keep their current stock; with replace, seed values overwrite them.
func SeedInventoryFromJSON(ctx context.Context, w ports.InventoryWriter, jsonPath string, replace bool) (int, error) {
	items, err := LoadInventorySeed(jsonPath)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, it := range items {
		if replace {
			if err := w.PutItem(ctx, it); err != nil {
				return written, fmt.Errorf("seed inventory: %w", err)
			}
			written++
			continue
		}

		added, err := w.AddItem(ctx, it)
		if err != nil {
			return written, fmt.Errorf("seed inventory: %w", err)
		}
		if added {
			written++
		}
	}

	return written, nil
}

// Replace the stored road network with routes in a single transaction.
func SeedRoutes(ctx context.Context, db *sql.DB, dialect Dialect, routes []domain.RouteSpec) error {
	if db == nil {
		return errors.New("seed routes: DB is nil")
	}

	for i, r := range routes {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("seed routes: route #%d: %w", i+1, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed routes: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM route_segments;`); err != nil {
		return fmt.Errorf("seed routes: clear route_segments: %w", err)
	}

	query := fmt.Sprintf(`
	INSERT INTO route_segments (
		seq,
		from_location,
		to_location,
		distance,
		forbidden
	)
	VALUES (%s, %s, %s, %s, %s);
	`, dialect.Bind(1), dialect.Bind(2), dialect.Bind(3), dialect.Bind(4), dialect.Bind(5))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed routes: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range routes {
		forbidden := strings.Join(r.Forbidden.Names(), ",")
		if _, err := stmt.ExecContext(ctx, i+1, r.From, r.To, r.Distance, forbidden); err != nil {
			return fmt.Errorf("seed routes: insert %s -> %s: %w", r.From, r.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed routes: commit tx: %w", err)
	}

	return nil
}
