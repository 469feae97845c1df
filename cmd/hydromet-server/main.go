// hydromet-server serves the explorer API and frontend.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hydromet/explorer/internal/app"
	"github.com/hydromet/explorer/internal/constants"
	"github.com/hydromet/explorer/internal/log"
	"github.com/hydromet/explorer/pkg/config"
)

func main() {
	cfgFile := flag.String("config", "config.yaml", "Path to configuration source:\n\t\t\t  YAML: config.yaml\n\t\t\t  SQLite: config.db\n\t\t\t  Use 'config-convert' tool to convert YAML→SQLite")
	cfgBackend := flag.String("config-backend", "yaml", "Configuration backend type: 'yaml' for YAML files, 'sqlite' for SQLite databases")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("hydromet-server %s\n", constants.Version)
		os.Exit(0)
	}

	provider, err := newProvider(*cfgFile, *cfgBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	loggingCfg, err := provider.GetLoggingConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read logging configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logging, with an optional rotating file sink from config
	err = log.InitWithFile(*debug, log.FileConfig{
		Path:       loggingCfg.File,
		MaxSizeMB:  loggingCfg.MaxSizeMB,
		MaxBackups: loggingCfg.MaxBackups,
		MaxAgeDays: loggingCfg.MaxAgeDays,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Create and run the application
	application := app.New(provider, log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

func newProvider(cfgFile, cfgBackend string) (config.ConfigProvider, error) {
	filename, _ := filepath.Abs(cfgFile)

	switch cfgBackend {
	case "yaml":
		provider := config.NewYAMLProvider(filename)
		// Read it once up front so a bad file fails at startup
		if _, err := provider.LoadConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
		}
		return provider, nil
	case "sqlite":
		provider, err := config.NewSQLiteProvider(filename)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unsupported configuration backend: %s. Use 'yaml' or 'sqlite'", cfgBackend)
	}
}
