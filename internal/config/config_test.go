package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LEDGER_BACKEND", "DB_PATH", "DATABASE_URL", "REDIS_URL",
		"NETWORK_PATH", "ROUTE_SOURCE", "SEED_PATH", "ORIGIN", "DISPATCH_CHANNEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Port:            "8080",
		LedgerBackend:   LedgerSQLite,
		DBPath:          "data/app.db",
		NetworkPath:     "data/network.yaml",
		RouteSource:     RouteSourceFile,
		SeedPath:        "data/seeds/inventory.json",
		DispatchChannel: "dispatch:outcomes",
	}, cfg)
}

func TestGet(t *testing.T) {
	t.Setenv("WAREHOUSE_TEST_KEY", "  value ")
	assert.Equal(t, "value", Get("WAREHOUSE_TEST_KEY", "fallback"))

	t.Setenv("WAREHOUSE_TEST_KEY", "   ")
	assert.Equal(t, "fallback", Get("WAREHOUSE_TEST_KEY", "fallback"))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"memory", Config{LedgerBackend: LedgerMemory, RouteSource: RouteSourceFile}, ""},
		{"postgres needs url", Config{LedgerBackend: LedgerPostgres, RouteSource: RouteSourceFile}, "DATABASE_URL"},
		{"redis needs url", Config{LedgerBackend: LedgerRedis, RouteSource: RouteSourceFile}, "REDIS_URL"},
		{"unknown backend", Config{LedgerBackend: "mongo", RouteSource: RouteSourceFile}, "LEDGER_BACKEND"},
		{"db routes need sql", Config{LedgerBackend: LedgerMemory, RouteSource: RouteSourceDB}, "ROUTE_SOURCE=db"},
		{"db routes on sqlite", Config{LedgerBackend: LedgerSQLite, RouteSource: RouteSourceDB}, ""},
		{"unknown route source", Config{LedgerBackend: LedgerSQLite, RouteSource: "http"}, "ROUTE_SOURCE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
