// Package migrations embeds the schema migrations and applies them with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed sql/*.sql
var files embed.FS

// Files exposes the embedded migration sources.
func Files() embed.FS {
	return files
}

// Up applies every pending migration. An already current schema is not an error.
func Up(dsn string, logger *slog.Logger) error {
	return run(dsn, logger, func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// Down rolls back every applied migration.
func Down(dsn string, logger *slog.Logger) error {
	return run(dsn, logger, func(m *migrate.Migrate) error {
		return m.Down()
	})
}

// Steps applies n migrations forward, or -n backward when n is negative.
func Steps(dsn string, n int, logger *slog.Logger) error {
	return run(dsn, logger, func(m *migrate.Migrate) error {
		return m.Steps(n)
	})
}

// Version reports the applied schema version and whether the last migration left it dirty.
// A database with no migrations applied reports version 0.
func Version(dsn string, logger *slog.Logger) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := run(dsn, logger, func(m *migrate.Migrate) error {
		v, d, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		version, dirty = v, d
		return err
	})
	return version, dirty, err
}

// run opens a dedicated connection because closing the migrator closes the
// database handle it was given.
func run(dsn string, logger *slog.Logger, fn func(*migrate.Migrate) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}

	m, err := newMigrate(db, logger)
	if err != nil {
		db.Close()
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("migration close failed", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	if err := fn(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func newMigrate(db *sql.DB, logger *slog.Logger) (*migrate.Migrate, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("load migration sources: %w", err)
	}

	drv, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", drv)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	m.Log = &migrateLogger{logger: logger.With("system", "migrations")}
	return m, nil
}

type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
