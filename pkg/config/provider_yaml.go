package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Server  ServerYAML  `yaml:"server,omitempty"`
		Site    SiteYAML    `yaml:"site,omitempty"`
		Logging LoggingYAML `yaml:"logging,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Server: ServerData{
			ListenAddr:    yamlConfig.Server.ListenAddr,
			HTTPPort:      yamlConfig.Server.HTTPPort,
			TLSCertPath:   yamlConfig.Server.TLSCertPath,
			TLSKeyPath:    yamlConfig.Server.TLSKeyPath,
			MaxGridPoints: yamlConfig.Server.MaxGridPoints,
		},
		Site: SiteData{
			PageTitle: yamlConfig.Site.PageTitle,
			AboutHTML: yamlConfig.Site.AboutHTML,
		},
		Logging: LoggingData{
			File:       yamlConfig.Logging.File,
			MaxSizeMB:  yamlConfig.Logging.MaxSizeMB,
			MaxBackups: yamlConfig.Logging.MaxBackups,
			MaxAgeDays: yamlConfig.Logging.MaxAgeDays,
		},
	}

	y.config = config
	return config, nil
}

// GetServerConfig returns the HTTP server configuration
func (y *YAMLProvider) GetServerConfig() (*ServerData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Server, nil
}

// GetSiteConfig returns the site presentation configuration
func (y *YAMLProvider) GetSiteConfig() (*SiteData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Site, nil
}

// GetLoggingConfig returns the logging configuration
func (y *YAMLProvider) GetLoggingConfig() (*LoggingData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Logging, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags for parsing the file format
type ServerYAML struct {
	ListenAddr    string `yaml:"listen-addr,omitempty"`
	HTTPPort      int    `yaml:"http-port,omitempty"`
	TLSCertPath   string `yaml:"tls-cert-path,omitempty"`
	TLSKeyPath    string `yaml:"tls-key-path,omitempty"`
	MaxGridPoints int    `yaml:"max-grid-points,omitempty"`
}

type SiteYAML struct {
	PageTitle string `yaml:"page-title,omitempty"`
	AboutHTML string `yaml:"about-html,omitempty"`
}

type LoggingYAML struct {
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max-size-mb,omitempty"`
	MaxBackups int    `yaml:"max-backups,omitempty"`
	MaxAgeDays int    `yaml:"max-age-days,omitempty"`
}
