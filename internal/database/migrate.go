package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// newMigrate opens a dedicated connection for golang-migrate. Closing the
// returned instance closes that connection.
func newMigrate(dsn string) (*migrate.Migrate, error) {
	driver, source, err := driverDSN(dsn)
	if err != nil {
		return nil, err
	}

	dir := "migrations/sqlite"
	if driver == DriverPostgres {
		dir = "migrations/postgres"
	}
	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("could not load migrations: %w", err)
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	var instance migratedb.Driver
	switch driver {
	case DriverPostgres:
		instance, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	default:
		instance, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, instance)
	if err != nil {
		instance.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration.
func MigrateUp(dsn string, logger *zap.Logger) error {
	return runMigration(dsn, logger, "up", func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown rolls back every applied migration.
func MigrateDown(dsn string, logger *zap.Logger) error {
	return runMigration(dsn, logger, "down", func(m *migrate.Migrate) error { return m.Down() })
}

func runMigration(dsn string, logger *zap.Logger, direction string, apply func(*migrate.Migrate) error) error {
	m, err := newMigrate(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := apply(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No migrations to apply", zap.String("direction", direction))
			return nil
		}
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", verr)
	}
	logger.Info("Migrations completed successfully",
		zap.String("direction", direction),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}
