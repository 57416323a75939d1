package database

import (
	"database/sql"
	"fmt"
)

// SeedIfEmpty inserts one sample movie so a fresh install has something to
// show on the home page. Does nothing once the table has any rows.
func SeedIfEmpty(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing movies: %w", err)
	}

	if count > 0 {
		return nil
	}

	_, err := db.Exec(
		`INSERT INTO movies (title, year, description, rating, review, poster_url)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		"Phone Booth",
		2002,
		"Publicist Stuart Shepard finds himself trapped in a phone booth, pinned down by an extortionist's sniper rifle. Unable to leave or receive outside help, Stuart's negotiation with the caller leads to a jaw-dropping climax.",
		7.3,
		"My favourite character was the caller.",
		"https://image.tmdb.org/t/p/w500/tjrX2oWRCM3Tvarz38zlZM7Uc10.jpg",
	)
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	return nil
}
