package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"warehouse-shipping-service/internal/domain"
)

// SQL-backed implementation of the RouteSource port.
type SQLRouteRepository struct{ DB *sql.DB }

func NewSQLRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db}
}

// Return all routes stored in the database in insertion order.
func (s *SQLRouteRepository) ListRoutes(ctx context.Context) ([]domain.RouteSpec, error) {
	if s.DB == nil {
		return nil, errors.New("sql route repository: DB is nil")
	}

	query := `
	SELECT
		from_location,
		to_location,
		distance,
		forbidden
	FROM route_segments
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query route_segments table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.RouteSpec, 0, 64)
	for rows.Next() {
		var r domain.RouteSpec
		var forbidden string
		if err := rows.Scan(&r.From, &r.To, &r.Distance, &forbidden); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}

		r.Forbidden, err = domain.ParseClassSet(splitClasses(forbidden))
		if err != nil {
			return nil, fmt.Errorf("list routes: %s -> %s: %w", r.From, r.To, err)
		}
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

func splitClasses(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
