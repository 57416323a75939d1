package database

import (
	"database/sql"
	"fmt"
)

// Migrate ensures the schema exists. Safe to run on every startup.
func Migrate(db *sql.DB) error {
	migrationSQL := `
	CREATE TABLE IF NOT EXISTS movies (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) UNIQUE NOT NULL,
		year INTEGER NOT NULL,
		description TEXT NOT NULL,
		rating DOUBLE PRECISION,
		ranking INTEGER,
		review TEXT,
		poster_url TEXT NOT NULL
	);
	`

	if _, err := db.Exec(migrationSQL); err != nil {
		return fmt.Errorf("failed to run movies migration: %w", err)
	}

	return nil
}
