package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"warehouse-shipping-service/internal/adapters/events"
	"warehouse-shipping-service/internal/adapters/ledger"
	"warehouse-shipping-service/internal/adapters/network"
	"warehouse-shipping-service/internal/adapters/repositories"
	"warehouse-shipping-service/internal/api"
	"warehouse-shipping-service/internal/config"
	"warehouse-shipping-service/internal/platform/db"
	"warehouse-shipping-service/internal/ports"
	"warehouse-shipping-service/internal/services"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (ledger backend, route source, reporters) behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	file, err := network.LoadFile(cfg.NetworkPath)
	if err != nil {
		log.Fatal(err)
	}

	var sqlDB *sql.DB
	var dialect repositories.Dialect
	switch cfg.LedgerBackend {
	case config.LedgerSQLite:
		sqlDB, err = db.OpenSqlite(cfg.DBPath)
		dialect = repositories.SQLite
	case config.LedgerPostgres:
		sqlDB, err = db.Open(cfg.DatabaseURL)
		dialect = repositories.Postgres
	}
	if err != nil {
		log.Fatal(err)
	}
	if sqlDB != nil {
		defer sqlDB.Close()
		if err := repositories.InitSchema(sqlDB); err != nil {
			log.Fatal(err)
		}
	}

	inventory, closeLedger, err := openLedger(cfg, sqlDB, dialect)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLedger.Close()

	// Seed demo stock on startup for local runs. Items already stocked keep
	// their quantities so a restart does not undo reservations.
	if w, ok := inventory.(ports.InventoryWriter); ok {
		n, err := repositories.SeedInventoryFromJSON(ctx, w, cfg.SeedPath, false)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Inventory seeded new_items=%d backend=%s", n, cfg.LedgerBackend)
	}

	var routes ports.RouteSource = file
	if cfg.RouteSource == config.RouteSourceDB {
		routes = repositories.NewSQLRouteRepository(sqlDB)
	}

	graph, err := services.BuildRouteGraph(ctx, routes)
	if err != nil {
		log.Fatal(err)
	}
	fleet, err := services.BuildFleet(ctx, file)
	if err != nil {
		log.Fatal(err)
	}

	origin := cfg.Origin
	if origin == "" {
		origin = file.Origin()
	}
	if origin != "" && !graph.HasLocation(origin) {
		log.Fatalf("origin %q is not a location of the network", origin)
	}
	log.Printf("Network loaded locations=%d segments=%d vehicles=%d origin=%q",
		len(graph.Locations()), graph.SegmentCount(), fleet.Len(), origin)

	reporter, closeReporter, err := openReporter(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeReporter.Close()

	router := api.NewRouter(api.Deps{
		Graph:    graph,
		Fleet:    fleet,
		Ledger:   inventory,
		Reporter: reporter,
		Origin:   origin,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening addr=:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-stop
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openLedger(cfg *config.Config, sqlDB *sql.DB, dialect repositories.Dialect) (ports.InventoryLedger, io.Closer, error) {
	switch cfg.LedgerBackend {
	case config.LedgerMemory:
		return ledger.NewMemoryLedger(nil), nopCloser{}, nil
	case config.LedgerSQLite, config.LedgerPostgres:
		return ledger.NewSQLLedger(sqlDB, dialect), nopCloser{}, nil
	case config.LedgerRedis:
		l, err := ledger.NewRedisLedgerFromURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return l, l, nil
	}
	return nil, nil, fmt.Errorf("open ledger: unsupported backend %q", cfg.LedgerBackend)
}

// openReporter always logs and counts outcomes, and publishes them when Redis is configured.
func openReporter(cfg *config.Config) (ports.DispatchReporter, io.Closer, error) {
	reporters := events.MultiReporter{
		events.NewLogReporter(nil),
		events.NewMetricsReporter(nil),
	}
	if cfg.RedisURL == "" {
		return reporters, nopCloser{}, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open reporter: parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	reporters = append(reporters, events.NewRedisPublisher(rdb, cfg.DispatchChannel))
	return reporters, rdb, nil
}
