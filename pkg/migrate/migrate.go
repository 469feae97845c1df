// Package migrate applies versioned SQL migrations to the explorer's
// SQLite configuration database.
package migrate

import (
	"database/sql"
	"fmt"
	"sort"
)

// Migration represents a single database migration
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// DB represents either a database connection or transaction
type DB interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Provider defines how migrations are loaded and versions tracked
type Provider interface {
	GetMigrations() ([]Migration, error)
	GetCurrentVersion(db *sql.DB) (int, error)
	SetVersion(db DB, version int) error
	CreateMigrationTable(db *sql.DB) error
}

// Migrator handles the execution of migrations
type Migrator struct {
	db       *sql.DB
	provider Provider
}

// NewMigrator creates a new migrator instance
func NewMigrator(db *sql.DB, provider Provider) *Migrator {
	return &Migrator{
		db:       db,
		provider: provider,
	}
}

// MigrateUp runs all pending migrations up to the latest version
func (m *Migrator) MigrateUp() error {
	if err := m.provider.CreateMigrationTable(m.db); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}

	currentVersion, err := m.provider.GetCurrentVersion(m.db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	migrations, err := m.provider.GetMigrations()
	if err != nil {
		return fmt.Errorf("failed to get migrations: %w", err)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for _, migration := range migrations {
		if migration.Version > currentVersion {
			if err := m.executeMigration(migration, true); err != nil {
				return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
			}
		}
	}

	return nil
}

// MigrateDown reverts applied migrations down to targetVersion
func (m *Migrator) MigrateDown(targetVersion int) error {
	currentVersion, err := m.provider.GetCurrentVersion(m.db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if targetVersion >= currentVersion {
		return fmt.Errorf("target version %d must be less than current version %d", targetVersion, currentVersion)
	}

	migrations, err := m.provider.GetMigrations()
	if err != nil {
		return fmt.Errorf("failed to get migrations: %w", err)
	}

	// Rollback runs newest-first
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version > migrations[j].Version
	})

	for _, migration := range migrations {
		if migration.Version > targetVersion && migration.Version <= currentVersion {
			if err := m.executeMigration(migration, false); err != nil {
				return fmt.Errorf("failed to rollback migration %d: %w", migration.Version, err)
			}
		}
	}

	return nil
}

// CurrentVersion returns the current migration version
func (m *Migrator) CurrentVersion() (int, error) {
	if err := m.provider.CreateMigrationTable(m.db); err != nil {
		return 0, fmt.Errorf("failed to create migration table: %w", err)
	}
	return m.provider.GetCurrentVersion(m.db)
}

// executeMigration runs a single migration up or down inside a transaction
func (m *Migrator) executeMigration(migration Migration, up bool) error {
	stmt := migration.Up
	direction := "up"
	newVersion := migration.Version
	if !up {
		stmt = migration.Down
		direction = "down"
		newVersion = migration.Version - 1
	}

	if stmt == "" {
		return fmt.Errorf("migration %d has no %s SQL", migration.Version, direction)
	}

	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(stmt); err != nil {
		return fmt.Errorf("failed to execute migration SQL: %w", err)
	}

	if err := m.provider.SetVersion(tx, newVersion); err != nil {
		return fmt.Errorf("failed to update migration version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration transaction: %w", err)
	}

	return nil
}
