package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"warehouse-shipping-service/internal/adapters/ledger"
	"warehouse-shipping-service/internal/adapters/network"
	"warehouse-shipping-service/internal/adapters/repositories"
	"warehouse-shipping-service/internal/config"
	"warehouse-shipping-service/internal/platform/db"

	"github.com/spf13/cobra"
)

func main() {
	config.LoadDotEnv()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type dbFlags struct {
	driver      string
	dbPath      string
	databaseURL string
}

func rootCmd() *cobra.Command {
	var f dbFlags

	cmd := &cobra.Command{
		Use:   "dbtool",
		Short: "Manage the warehouse shipping database",
		Long: `dbtool creates the schema and loads seed data for the SQL
backends of the warehouse shipping service (SQLite or Postgres).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&f.driver, "driver", config.Get("DB_DRIVER", "sqlite"), "Database driver (sqlite, postgres)")
	cmd.PersistentFlags().StringVar(&f.dbPath, "db-path", config.Get("DB_PATH", "data/app.db"), "SQLite database file")
	cmd.PersistentFlags().StringVar(&f.databaseURL, "database-url", config.Get("DATABASE_URL", ""), "Postgres connection URL")

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, _, err := f.open()
			if err != nil {
				return err
			}
			defer conn.Close()

			log.Println("Initializing database schema...")
			if err := repositories.InitSchema(conn); err != nil {
				return fmt.Errorf("schema initialization failed: %w", err)
			}
			log.Println("Schema ready.")
			return nil
		},
	})

	cmd.AddCommand(seedCmd(&f))
	return cmd
}

func seedCmd(f *dbFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data",
	}

	var seedPath string
	var replace bool
	inventory := &cobra.Command{
		Use:   "inventory",
		Short: "Load inventory items from a JSON file",
		Long: `Insert inventory items that are not stocked yet. With --replace every
seed item is upserted and its quantity overwrites the stored one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, dialect, err := f.openWithSchema()
			if err != nil {
				return err
			}
			defer conn.Close()

			log.Printf("Seeding inventory path=%s replace=%t", seedPath, replace)
			n, err := repositories.SeedInventoryFromJSON(cmd.Context(), ledger.NewSQLLedger(conn, dialect), seedPath, replace)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			log.Printf("Seeding complete items=%d", n)
			return nil
		},
	}
	inventory.Flags().StringVar(&seedPath, "file", config.Get("SEED_PATH", "data/seeds/inventory.json"), "Inventory seed file")
	inventory.Flags().BoolVar(&replace, "replace", false, "Overwrite stock of items that already exist")

	var networkPath string
	routes := &cobra.Command{
		Use:   "routes",
		Short: "Replace stored routes with those of a network file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := network.LoadFile(networkPath)
			if err != nil {
				return err
			}
			specs, err := file.ListRoutes(cmd.Context())
			if err != nil {
				return err
			}

			conn, dialect, err := f.openWithSchema()
			if err != nil {
				return err
			}
			defer conn.Close()

			log.Printf("Seeding routes path=%s routes=%d", networkPath, len(specs))
			if err := repositories.SeedRoutes(cmd.Context(), conn, dialect, specs); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			log.Println("Seeding complete.")
			return nil
		},
	}
	routes.Flags().StringVar(&networkPath, "file", config.Get("NETWORK_PATH", "data/network.yaml"), "Network YAML file")

	cmd.AddCommand(inventory, routes)
	return cmd
}

func (f *dbFlags) open() (*sql.DB, repositories.Dialect, error) {
	dialect, err := repositories.ParseDialect(f.driver)
	if err != nil {
		return nil, 0, err
	}

	if dialect == repositories.Postgres {
		if f.databaseURL == "" {
			return nil, 0, fmt.Errorf("--database-url (or DATABASE_URL) is required for postgres")
		}
		conn, err := db.Open(f.databaseURL)
		return conn, dialect, err
	}

	conn, err := db.OpenSqlite(f.dbPath)
	return conn, dialect, err
}

func (f *dbFlags) openWithSchema() (*sql.DB, repositories.Dialect, error) {
	conn, dialect, err := f.open()
	if err != nil {
		return nil, 0, err
	}
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, 0, err
	}
	return conn, dialect, nil
}
