// Package config loads explorer configuration from YAML files or a
// SQLite database through a common provider interface.
package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetServerConfig() (*ServerData, error)
	GetSiteConfig() (*SiteData, error)
	GetLoggingConfig() (*LoggingData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Server  ServerData  `json:"server,omitempty"`
	Site    SiteData    `json:"site,omitempty"`
	Logging LoggingData `json:"logging,omitempty"`
}

// ServerData holds the HTTP server configuration. Zero values fall back
// to defaults at startup (all interfaces, port 8080, 2000 grid points).
type ServerData struct {
	ListenAddr    string `json:"listen_addr,omitempty"`
	HTTPPort      int    `json:"http_port,omitempty"`
	TLSCertPath   string `json:"tls_cert_path,omitempty"`
	TLSKeyPath    string `json:"tls_key_path,omitempty"`
	MaxGridPoints int    `json:"max_grid_points,omitempty"`
}

// SiteData holds presentation settings for the explorer frontend
type SiteData struct {
	PageTitle string `json:"page_title,omitempty"`
	AboutHTML string `json:"about_html,omitempty"`
}

// LoggingData holds optional rotating log file settings
type LoggingData struct {
	File       string `json:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty"`
}
