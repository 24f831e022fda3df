// Command bizrec_migrate applies or rolls back the database migrations
// without starting the API server.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/SscSPs/biz_records_app/pkg/config"
	"github.com/SscSPs/biz_records_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	direction := flag.String("direction", string(database.Up), "migration direction: up or down")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		logger.Error("PGSQL_URL must be set to run migrations")
		os.Exit(1)
	}

	dir := database.Direction(*direction)
	if dir == database.Down && cfg.IsProduction {
		logger.Error("Refusing to roll back migrations in production")
		os.Exit(1)
	}

	if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, dir, logger); err != nil {
		logger.Error("Migration failed", slog.String("direction", *direction), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
