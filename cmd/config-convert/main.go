// config-convert converts a YAML configuration file into the SQLite
// configuration database the server can also run from.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hydromet/explorer/pkg/config"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file (required)")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite database file (required)")
		force      = flag.Bool("force", false, "Overwrite existing SQLite database")
		dryRun     = flag.Bool("dry-run", false, "Show what would be done without executing")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <config.yaml> -sqlite <config.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*yamlFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: YAML file does not exist: %s\n", *yamlFile)
		os.Exit(1)
	}

	if _, err := os.Stat(*sqliteFile); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: SQLite file already exists: %s\n", *sqliteFile)
		fmt.Fprintf(os.Stderr, "Use -force to overwrite or choose a different filename\n")
		os.Exit(1)
	}

	fmt.Printf("Converting YAML configuration to SQLite...\n")
	fmt.Printf("  Source: %s\n", *yamlFile)
	fmt.Printf("  Target: %s\n", *sqliteFile)

	yamlProvider := config.NewYAMLProvider(*yamlFile)
	configData, err := yamlProvider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML configuration: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		printConfigSummary(configData)
		fmt.Println("DRY RUN complete - no database created")
		return
	}

	if *force {
		os.Remove(*sqliteFile)
	}

	// Creating the provider runs the embedded schema migrations
	sqliteProvider, err := config.NewSQLiteProvider(*sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SQLite database: %v\n", err)
		os.Exit(1)
	}
	defer sqliteProvider.Close()

	if err := sqliteProvider.SaveConfig(configData); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Conversion complete: %s\n", *sqliteFile)
	printConfigSummary(configData)
}

func printConfigSummary(cfg *config.ConfigData) {
	fmt.Println("Configuration summary:")
	fmt.Printf("  Server: listen %s port %d, max grid points %d\n",
		orDefault(cfg.Server.ListenAddr, "0.0.0.0"), cfg.Server.HTTPPort, cfg.Server.MaxGridPoints)
	if cfg.Server.TLSCertPath != "" && cfg.Server.TLSKeyPath != "" {
		fmt.Println("  TLS: enabled")
	}
	fmt.Printf("  Site: %q\n", cfg.Site.PageTitle)
	if cfg.Logging.File != "" {
		fmt.Printf("  Logging: rotating file %s\n", cfg.Logging.File)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
