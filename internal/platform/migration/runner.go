// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the SQL files under data/migrations with
// golang-migrate.
//
// The API applies pending migrations on startup. The seeder can also reset
// the schema, which reverts every migration and applies them again.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Registers the pgx5:// database scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// Registers the file:// source scheme.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator drives one migrations directory against one database.
type Migrator struct {
	sourceURL   string
	databaseURL string
	logger      *slog.Logger
}

// New prepares a Migrator. No connection is opened until a method runs.
func New(dsn, migrationsPath string, logger *slog.Logger) *Migrator {
	return &Migrator{
		sourceURL:   "file://" + migrationsPath,
		databaseURL: pgx5DSN(dsn),
		logger:      logger,
	}
}

// RunUp applies every pending migration.
func RunUp(dsn, migrationsPath string, logger *slog.Logger) error {
	return New(dsn, migrationsPath, logger).Up()
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (m *Migrator) Up() error {
	return m.with(func(instance *migrate.Migrate) error {
		from, err := m.cleanVersion(instance)
		if err != nil {
			return err
		}
		if err := instance.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				m.logger.Info("migration_up_to_date", slog.Uint64("version", uint64(from)))
				return nil
			}
			return fmt.Errorf("migration: up: %w", err)
		}
		to, _, _ := instance.Version()
		m.logger.Info("migration_applied",
			slog.Uint64("from_version", uint64(from)),
			slog.Uint64("to_version", uint64(to)),
		)
		return nil
	})
}

// Reset reverts every migration and then applies them all again.
// All data is lost.
func (m *Migrator) Reset() error {
	return m.with(func(instance *migrate.Migrate) error {
		if _, err := m.cleanVersion(instance); err != nil {
			return err
		}
		if err := instance.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration: down: %w", err)
		}
		if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration: up: %w", err)
		}
		to, _, _ := instance.Version()
		m.logger.Info("migration_reset", slog.Uint64("version", uint64(to)))
		return nil
	})
}

// cleanVersion returns the applied version, or 0 for an empty database,
// and refuses to continue from a dirty state.
func (m *Migrator) cleanVersion(instance *migrate.Migrate) (uint, error) {
	version, dirty, err := instance.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("migration: read version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migration: database is dirty at version %d", version)
	}
	return version, nil
}

func (m *Migrator) with(fn func(*migrate.Migrate) error) error {
	instance, err := migrate.New(m.sourceURL, m.databaseURL)
	if err != nil {
		return fmt.Errorf("migration: open: %w", err)
	}
	defer func() {
		sourceErr, dbErr := instance.Close()
		if err := errors.Join(sourceErr, dbErr); err != nil {
			m.logger.Warn("migration_close_failed", slog.Any("error", err))
		}
	}()

	instance.Log = slogBridge{logger: m.logger}
	return fn(instance)
}

// pgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// the pgx/v5 driver registers.
func pgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// slogBridge satisfies migrate.Logger.
type slogBridge struct {
	logger *slog.Logger
}

func (b slogBridge) Printf(format string, args ...any) {
	b.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (b slogBridge) Verbose() bool { return false }
