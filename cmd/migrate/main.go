// migrate manages the schema of a SQLite configuration database from
// migration files on disk. The server applies the embedded migrations
// automatically at startup; this tool exists for inspecting a database
// and for developing new migrations against a scratch copy.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hydromet/explorer/pkg/migrate"
	_ "modernc.org/sqlite" // SQLite driver
)

func main() {
	var (
		dbPath         = flag.String("db", "", "Path to SQLite database file (required)")
		migrationDir   = flag.String("dir", "pkg/config/migrations", "Migration directory")
		migrationTable = flag.String("table", "schema_migrations", "Migration table name")
		command        = flag.String("command", "up", "Migration command: up, down, version")
		targetVersion  = flag.String("target", "", "Target version for the down command")
	)
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -db flag is required\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	db, err := sql.Open("sqlite", *dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	provider := migrate.NewFSProvider(os.DirFS(*migrationDir), *migrationTable)
	migrator := migrate.NewMigrator(db, provider)

	switch *command {
	case "up":
		err = migrator.MigrateUp()
	case "down":
		if *targetVersion == "" {
			fmt.Fprintf(os.Stderr, "Error: -target flag is required for down command\n")
			os.Exit(1)
		}
		target, convErr := strconv.Atoi(*targetVersion)
		if convErr != nil {
			log.Fatalf("Invalid target version: %v", convErr)
		}
		err = migrator.MigrateDown(target)
	case "version":
		version, verErr := migrator.CurrentVersion()
		if verErr != nil {
			log.Fatalf("Failed to get current version: %v", verErr)
		}
		fmt.Printf("Current version: %d\n", version)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", *command)
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("Migration command failed: %v", err)
	}

	fmt.Println("Migration completed successfully")
}
