// Command migrate creates or updates the contact_addresses table and exits.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"contactdesk/config"
	logs "contactdesk/internal/infra/log"
	"contactdesk/internal/infra/persistence/database"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const migrateTimeout = 2 * time.Minute

func main() {
	var (
		cfg    *config.Config
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			database.New,
		),
		fx.Populate(&cfg, &db, &logger),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build migration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	migrateErr := database.AutoMigrate(ctx, db)
	if stopErr := app.Stop(ctx); stopErr != nil {
		logger.Warn("Failed to close database", slog.Any("error", stopErr))
	}

	if migrateErr != nil {
		logger.Error("Migration failed", slog.Any("error", migrateErr))
		os.Exit(1)
	}

	logger.Info("Migration completed", slog.String("driver", cfg.Database.Driver))
}
