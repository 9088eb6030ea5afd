package runstore

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/seolens/seolens/schema"
)

// Migration scripts are kept per backend because the DDL dialects disagree
// on auto-increment keys and timestamp types. Every file holds exactly one
// statement so MySQL connections do not need multiStatements enabled.
//
//go:embed migrations
var migrationsFS embed.FS

// migrationSource returns the embedded migration scripts matching the
// backend's SQL dialect.
func migrationSource(backend schema.DatabaseBackend) (fs.FS, error) {
	var dir string
	switch backend {
	case schema.SQLiteBackend:
		dir = "migrations/sqlite"
	case schema.MySQLBackend:
		dir = "migrations/mysql"
	case schema.PostgreSQLBackend:
		dir = "migrations/postgres"
	default:
		return nil, fmt.Errorf("no migration scripts for backend: %s", backend)
	}
	return fs.Sub(migrationsFS, dir)
}

// openMigrationTarget opens the database and wraps it in the matching
// migrate driver. The caller owns closing the returned *sql.DB.
func openMigrationTarget(backend schema.DatabaseBackend, connStr string) (*sql.DB, database.Driver, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetHistoryDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		driver, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create SQLite migrate driver: %w", err)
		}
		return db, driver, nil

	case schema.MySQLBackend:
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open MySQL database: %w", err)
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping MySQL database: %w", err)
		}
		driver, err := mysql.WithInstance(db, &mysql.Config{})
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create MySQL migrate driver: %w", err)
		}
		return db, driver, nil

	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open PostgreSQL database: %w", err)
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping PostgreSQL database: %w", err)
		}
		driver, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create PostgreSQL migrate driver: %w", err)
		}
		return db, driver, nil

	default:
		return nil, nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// MigrateHistory runs database migrations for the run history store.
// - If targetVersion < 0, it migrates to the latest version.
// - If targetVersion == 0, it rolls back all migrations (to initial state).
// - If targetVersion > 0, it migrates to the specified version.
func MigrateHistory(backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("migrations are not supported for NoneBackend")
	}

	scripts, err := migrationSource(backend)
	if err != nil {
		return err
	}
	sourceDriver, err := iofs.New(scripts, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	db, driver, err := openMigrationTarget(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "seolens", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state at version %d. Please fix manually or force version", currentVersion)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
		if err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("failed to migrate to latest version: %w", err)
		}
		if err == migrate.ErrNoChange {
			fmt.Println("No migration needed. Database is already at the latest version.")
		} else {
			newVersion, _, _ := m.Version()
			fmt.Printf("Successfully migrated from version %d to version %d\n", currentVersion, newVersion)
		}

	case targetVersion == 0:
		// Roll everything back to the pre-migration state.
		err = m.Down()
		if err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("failed to roll back to version 0: %w", err)
		}
		if err == migrate.ErrNoChange {
			fmt.Println("No migration needed. Database is already at version 0")
		} else {
			fmt.Printf("Successfully rolled back from version %d to version 0\n", currentVersion)
		}

	default:
		err = m.Migrate(uint(targetVersion))
		if err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("failed to migrate to version %d: %w", targetVersion, err)
		}
		if err == migrate.ErrNoChange {
			fmt.Printf("No migration needed. Database is already at version %d\n", targetVersion)
		} else {
			fmt.Printf("Successfully migrated from version %d to version %d\n", currentVersion, targetVersion)
		}
	}

	return nil
}
