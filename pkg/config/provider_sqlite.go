package config

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/hydromet/explorer/pkg/migrate"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider. The
// schema is created or upgraded in place from the embedded migrations.
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	migrator := migrate.NewMigrator(db, migrate.NewFSProvider(sub, ""))
	if err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	server, err := s.GetServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	config.Server = *server

	site, err := s.GetSiteConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load site config: %w", err)
	}
	config.Site = *site

	logging, err := s.GetLoggingConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load logging config: %w", err)
	}
	config.Logging = *logging

	return config, nil
}

// GetServerConfig returns the HTTP server configuration from the database
func (s *SQLiteProvider) GetServerConfig() (*ServerData, error) {
	query := `
		SELECT listen_addr, http_port, tls_cert_path, tls_key_path, max_grid_points
		FROM server_config
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var server ServerData
	var listenAddr, certPath, keyPath sql.NullString
	var port, maxPoints sql.NullInt64

	err := s.db.QueryRow(query).Scan(&listenAddr, &port, &certPath, &keyPath, &maxPoints)
	if err == sql.ErrNoRows {
		// Section not configured; defaults apply at startup
		return &server, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query server config: %w", err)
	}

	if listenAddr.Valid {
		server.ListenAddr = listenAddr.String
	}
	if port.Valid {
		server.HTTPPort = int(port.Int64)
	}
	if certPath.Valid {
		server.TLSCertPath = certPath.String
	}
	if keyPath.Valid {
		server.TLSKeyPath = keyPath.String
	}
	if maxPoints.Valid {
		server.MaxGridPoints = int(maxPoints.Int64)
	}

	return &server, nil
}

// GetSiteConfig returns the site presentation configuration from the database
func (s *SQLiteProvider) GetSiteConfig() (*SiteData, error) {
	query := `
		SELECT page_title, about_html
		FROM site_config
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var site SiteData
	var pageTitle, aboutHTML sql.NullString

	err := s.db.QueryRow(query).Scan(&pageTitle, &aboutHTML)
	if err == sql.ErrNoRows {
		return &site, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query site config: %w", err)
	}

	if pageTitle.Valid {
		site.PageTitle = pageTitle.String
	}
	if aboutHTML.Valid {
		site.AboutHTML = aboutHTML.String
	}

	return &site, nil
}

// GetLoggingConfig returns the logging configuration from the database
func (s *SQLiteProvider) GetLoggingConfig() (*LoggingData, error) {
	query := `
		SELECT file, max_size_mb, max_backups, max_age_days
		FROM logging_config
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var logging LoggingData
	var file sql.NullString
	var maxSize, maxBackups, maxAge sql.NullInt64

	err := s.db.QueryRow(query).Scan(&file, &maxSize, &maxBackups, &maxAge)
	if err == sql.ErrNoRows {
		return &logging, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query logging config: %w", err)
	}

	if file.Valid {
		logging.File = file.String
	}
	if maxSize.Valid {
		logging.MaxSizeMB = int(maxSize.Int64)
	}
	if maxBackups.Valid {
		logging.MaxBackups = int(maxBackups.Int64)
	}
	if maxAge.Valid {
		logging.MaxAgeDays = int(maxAge.Int64)
	}

	return &logging, nil
}

// SaveConfig replaces the stored configuration with configData
func (s *SQLiteProvider) SaveConfig(configData *ConfigData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	configID, err := s.getOrCreateConfigID(tx)
	if err != nil {
		return err
	}

	// Clear existing section rows before inserting the new ones
	for _, table := range []string{"server_config", "site_config", "logging_config"} {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE config_id = ?", table), configID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO server_config (config_id, listen_addr, http_port, tls_cert_path, tls_key_path, max_grid_points)
		VALUES (?, ?, ?, ?, ?, ?)
	`, configID, nullString(configData.Server.ListenAddr), nullInt(configData.Server.HTTPPort),
		nullString(configData.Server.TLSCertPath), nullString(configData.Server.TLSKeyPath),
		nullInt(configData.Server.MaxGridPoints))
	if err != nil {
		return fmt.Errorf("failed to insert server config: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO site_config (config_id, page_title, about_html)
		VALUES (?, ?, ?)
	`, configID, nullString(configData.Site.PageTitle), nullString(configData.Site.AboutHTML))
	if err != nil {
		return fmt.Errorf("failed to insert site config: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO logging_config (config_id, file, max_size_mb, max_backups, max_age_days)
		VALUES (?, ?, ?, ?, ?)
	`, configID, nullString(configData.Logging.File), nullInt(configData.Logging.MaxSizeMB),
		nullInt(configData.Logging.MaxBackups), nullInt(configData.Logging.MaxAgeDays))
	if err != nil {
		return fmt.Errorf("failed to insert logging config: %w", err)
	}

	return tx.Commit()
}

// getOrCreateConfigID returns the id of the default config row
func (s *SQLiteProvider) getOrCreateConfigID(tx *sql.Tx) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM configs WHERE name = 'default'").Scan(&id)
	if err == sql.ErrNoRows {
		result, err := tx.Exec("INSERT INTO configs (name) VALUES ('default')")
		if err != nil {
			return 0, fmt.Errorf("failed to insert config row: %w", err)
		}
		return result.LastInsertId()
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query config row: %w", err)
	}
	return id, nil
}

// IsReadOnly returns false since SQLite configurations can be written
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Helper functions for handling nullable fields
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i != 0}
}
