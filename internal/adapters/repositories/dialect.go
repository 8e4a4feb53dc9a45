package repositories

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the placeholder syntax of the SQL backend.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	}
	return 0, fmt.Errorf("unknown sql dialect %q", s)
}

// Bind returns the placeholder for the n-th (1-based) query argument.
func (d Dialect) Bind(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}
