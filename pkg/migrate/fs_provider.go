package migrate

import (
	"database/sql"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Migration file naming: 0001_migration_name.up.sql / 0001_migration_name.down.sql
var (
	upRegex   = regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)
	downRegex = regexp.MustCompile(`^(\d+)_(.+)\.down\.sql$`)
)

// FSProvider loads migrations from any fs.FS, which lets callers embed
// their migration files in the binary with go:embed.
type FSProvider struct {
	fsys           fs.FS
	migrationTable string
}

// NewFSProvider creates a migration provider reading from fsys. An empty
// table name falls back to schema_migrations.
func NewFSProvider(fsys fs.FS, migrationTable string) *FSProvider {
	if migrationTable == "" {
		migrationTable = "schema_migrations"
	}
	return &FSProvider{
		fsys:           fsys,
		migrationTable: migrationTable,
	}
}

// GetMigrations loads every up/down pair from the filesystem
func (p *FSProvider) GetMigrations() ([]Migration, error) {
	byVersion := make(map[int]*Migration)

	err := fs.WalkDir(p.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		filename := d.Name()
		matches := upRegex.FindStringSubmatch(filename)
		up := true
		if matches == nil {
			matches = downRegex.FindStringSubmatch(filename)
			up = false
		}
		if matches == nil {
			return nil
		}

		version, err := strconv.Atoi(matches[1])
		if err != nil {
			return fmt.Errorf("invalid version number in file %s: %w", filename, err)
		}

		content, err := fs.ReadFile(p.fsys, path)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", path, err)
		}

		m := byVersion[version]
		if m == nil {
			m = &Migration{
				Version: version,
				Name:    strings.ReplaceAll(matches[2], "_", " "),
			}
			byVersion[version] = m
		}
		if up {
			m.Up = string(content)
		} else {
			m.Down = string(content)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		migrations = append(migrations, *m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// CreateMigrationTable creates the migration tracking table
func (p *FSProvider) CreateMigrationTable(db *sql.DB) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`, p.migrationTable)

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}
	return nil
}

// GetCurrentVersion returns the highest applied migration version
func (p *FSProvider) GetCurrentVersion(db *sql.DB) (int, error) {
	query := fmt.Sprintf("SELECT COALESCE(MAX(version), 0) FROM %s", p.migrationTable)

	var version int
	if err := db.QueryRow(query).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}

// SetVersion sets the migration version
func (p *FSProvider) SetVersion(db DB, version int) error {
	if version == 0 {
		// Rolling all the way back clears the version records
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", p.migrationTable))
		if err != nil {
			return fmt.Errorf("failed to set version: %w", err)
		}
		return nil
	}

	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO %s (version, applied_at)
		VALUES (?, CURRENT_TIMESTAMP)
	`, p.migrationTable)
	if _, err := db.Exec(query, version); err != nil {
		return fmt.Errorf("failed to set version: %w", err)
	}
	return nil
}
