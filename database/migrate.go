package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies all pending migrations. An empty dir selects the
// embedded migrations for driver.
func RunMigrations(db *sql.DB, driver, dir string) error {
	m, err := newMigrate(db, driver, dir)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// RollbackMigration reverts the most recent migration.
func RollbackMigration(db *sql.DB, driver, dir string) error {
	m, err := newMigrate(db, driver, dir)
	if err != nil {
		return err
	}

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// MigrationVersion reports the applied version and whether it is dirty.
func MigrationVersion(db *sql.DB, driver, dir string) (uint, bool, error) {
	m, err := newMigrate(db, driver, dir)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// newMigrate deliberately leaves the returned instance open: closing it also
// closes db, which belongs to the caller.
func newMigrate(db *sql.DB, driver, dir string) (*migrate.Migrate, error) {
	var (
		instance migratedb.Driver
		name     string
		err      error
	)

	switch driver {
	case DriverMySQL:
		name = "mysql"
		instance, err = mysql.WithInstance(db, &mysql.Config{})
	case DriverPostgres:
		name = "postgres"
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverSQLite:
		name = "sqlite3"
		instance, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migration driver: %w", name, err)
	}

	var source fs.FS
	path := "migrations/" + name
	if dir != "" {
		source = os.DirFS(dir)
		path = "."
	} else {
		source = migrationsFS
	}

	src, err := iofs.New(source, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise migrations: %w", err)
	}
	return m, nil
}
