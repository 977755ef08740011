package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// Migrator applies the shipping schema with golang-migrate.
type Migrator struct {
	migrate *migrate.Migrate
	logger  *zap.Logger
}

// New reads versioned SQL files from fsys (normally the embedded
// migrations.FS) and applies them to db.
func New(db *sql.DB, fsys fs.FS, logger *zap.Logger) (*Migrator, error) {
	src, err := iofs.New(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}
	target, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", target)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return &Migrator{migrate: m, logger: logger}, nil
}

func (m *Migrator) Up() error {
	return m.run(m.logger, "up", m.migrate.Up)
}

func (m *Migrator) Down() error {
	return m.run(m.logger, "down", m.migrate.Down)
}

// Steps moves n versions, forward when n is positive.
func (m *Migrator) Steps(n int) error {
	return m.run(m.logger.With(zap.Int("steps", n)), "steps", func() error {
		return m.migrate.Steps(n)
	})
}

// GoTo migrates up or down to exactly version.
func (m *Migrator) GoTo(version uint) error {
	return m.run(m.logger.With(zap.Uint("target_version", version)), "goto", func() error {
		return m.migrate.Migrate(version)
	})
}

// run treats ErrNoChange as success and logs the version reached.
func (m *Migrator) run(log *zap.Logger, op string, apply func() error) error {
	log = log.With(zap.String("op", op))
	log.Info("Applying migrations")

	switch err := apply(); {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("Schema already current")
		return nil
	case err != nil:
		return fmt.Errorf("migrate %s: %w", op, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Info("Migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// Version reports the applied version. An empty schema is version 0.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}

// Force records version as applied and clears the dirty flag without
// running any SQL. Used to recover from a failed migration.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("Forcing migration version", zap.Int("version", version))
	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	return nil
}

// Drop removes every table, including the version table.
func (m *Migrator) Drop() error {
	m.logger.Warn("Dropping all shipping tables")
	if err := m.migrate.Drop(); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.migrate.Close()
	return errors.Join(srcErr, dbErr)
}
