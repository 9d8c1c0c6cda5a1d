package db

import (
	"strings"

	"canteen-backoffice/internal/pkg/config"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// NewMigrator reads the embedded schema and targets the configured database
// through the pgx/v5 driver.
func NewMigrator(cfg config.DBConfig) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errs.Wrap(err, "failed to open embedded migrations")
	}
	dsn := "pgx5://" + strings.TrimPrefix(cfg.BuildDSN(), "postgres://")
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create migrator")
	}
	return m, nil
}

// MigrateUp applies every pending migration. No change is not an error.
func MigrateUp(cfg config.DBConfig) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errs.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to apply migrations")
	}
	return nil
}
