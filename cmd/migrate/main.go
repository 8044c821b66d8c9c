package main

import (
	"log"

	"recruai-web/internal/config"
	"recruai-web/internal/repository/implementation"
	"recruai-web/pkg/database"
)

// migrate creates the tables the web server owns. The server also migrates on
// boot; this is for deploys that run migrations as a separate step.
func main() {
	// 1. Load Environment Variables
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.Open(cfg.Database.Connection, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// 3. AutoMigrate
	log.Println("Running AutoMigrate for waitlist_entries...")
	if err := implementation.Migrate(db); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}
	log.Println("Migration completed.")
}
