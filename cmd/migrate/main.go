// Command migrate applies the database schema.
//
// Connect only auto-migrates outside production; this command is the explicit
// path for applying schema changes to a production database.
package main

import (
	"fmt"
	"log"

	"stackwiser/internal/config"
	"stackwiser/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Println("schema migration applied")
	return nil
}
