// Package infrastructure assembles the shared systems every domain module
// depends on: lifecycle coordination, logging, the database pool, metrics,
// and trace export.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/codynn/internal/config"
	"github.com/JaimeStill/codynn/internal/migrations"
	"github.com/JaimeStill/codynn/pkg/database"
	"github.com/JaimeStill/codynn/pkg/lifecycle"
	"github.com/JaimeStill/codynn/pkg/logging"
	"github.com/JaimeStill/codynn/pkg/metrics"
	"github.com/JaimeStill/codynn/pkg/tracing"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Metrics   *metrics.Metrics

	cfg *config.Config
}

// New creates an Infrastructure from the application configuration.
// Nothing connects until Start.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  db,
		cfg:       cfg,
	}

	if cfg.Metrics.Enabled {
		infra.Metrics = metrics.New(&cfg.Metrics)
	}

	return infra, nil
}

// Start connects the database, applies pending migrations when configured,
// and registers pool metrics and trace export with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	if i.cfg.Database.MigrateOnStart {
		if err := migrations.Up(i.cfg.Database.Dsn(), i.Logger); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	if i.Metrics != nil {
		if err := i.Metrics.RegisterDB(i.Database.Connection(), i.cfg.Database.Name); err != nil {
			return fmt.Errorf("metrics registration failed: %w", err)
		}
	}

	if err := tracing.Start(&i.cfg.Tracing, i.cfg.Version, i.Lifecycle, i.Logger); err != nil {
		return fmt.Errorf("tracing start failed: %w", err)
	}

	return nil
}
