package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	LedgerMemory   = "memory"
	LedgerSQLite   = "sqlite"
	LedgerPostgres = "postgres"
	LedgerRedis    = "redis"

	RouteSourceFile = "file"
	RouteSourceDB   = "db"
)

// Config holds the service settings resolved from the environment.
type Config struct {
	Port            string
	LedgerBackend   string
	DBPath          string
	DatabaseURL     string
	RedisURL        string
	NetworkPath     string
	RouteSource     string
	SeedPath        string
	Origin          string
	DispatchChannel string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            Get("PORT", "8080"),
		LedgerBackend:   strings.ToLower(Get("LEDGER_BACKEND", LedgerSQLite)),
		DBPath:          Get("DB_PATH", "data/app.db"),
		DatabaseURL:     Get("DATABASE_URL", ""),
		RedisURL:        Get("REDIS_URL", ""),
		NetworkPath:     Get("NETWORK_PATH", "data/network.yaml"),
		RouteSource:     strings.ToLower(Get("ROUTE_SOURCE", RouteSourceFile)),
		SeedPath:        Get("SEED_PATH", "data/seeds/inventory.json"),
		Origin:          Get("ORIGIN", ""),
		DispatchChannel: Get("DISPATCH_CHANNEL", "dispatch:outcomes"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.LedgerBackend {
	case LedgerMemory, LedgerSQLite, LedgerRedis:
	case LedgerPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres ledger"))
		}
	default:
		errs = append(errs, fmt.Errorf("LEDGER_BACKEND=%q: want memory, sqlite, postgres or redis", c.LedgerBackend))
	}

	if c.LedgerBackend == LedgerRedis && c.RedisURL == "" {
		errs = append(errs, errors.New("REDIS_URL is required for the redis ledger"))
	}

	switch c.RouteSource {
	case RouteSourceFile:
	case RouteSourceDB:
		if c.LedgerBackend != LedgerSQLite && c.LedgerBackend != LedgerPostgres {
			errs = append(errs, fmt.Errorf("ROUTE_SOURCE=db needs a sqlite or postgres LEDGER_BACKEND, got %q", c.LedgerBackend))
		}
	default:
		errs = append(errs, fmt.Errorf("ROUTE_SOURCE=%q: want file or db", c.RouteSource))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
