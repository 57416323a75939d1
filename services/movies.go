package services

import (
	"context"
	"database/sql"
	"errors"

	"Reelrank/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

const movieColumns = "id, title, year, description, rating, ranking, review, poster_url"

// MovieService is the SQL-backed movie store.
type MovieService struct {
	db *sql.DB
}

func NewMovieService(db *sql.DB) *MovieService {
	return &MovieService{db: db}
}

func scanMovie(row interface{ Scan(dest ...any) error }) (*models.Movie, error) {
	var m models.Movie
	var rating sql.NullFloat64
	var ranking sql.NullInt64
	var review sql.NullString

	err := row.Scan(&m.ID, &m.Title, &m.Year, &m.Description, &rating, &ranking, &review, &m.PosterURL)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		m.Rating = &rating.Float64
	}
	if ranking.Valid {
		r := int(ranking.Int64)
		m.Ranking = &r
	}
	if review.Valid {
		m.Review = &review.String
	}
	return &m, nil
}

// Create inserts a new movie and fills in its assigned id. Rating, ranking
// and review start out null.
func (s *MovieService) Create(ctx context.Context, m *models.Movie) error {
	query := `
		INSERT INTO movies (title, year, description, poster_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, m.Title, m.Year, m.Description, m.PosterURL).Scan(&m.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &StorageError{Op: "create movie", Err: ErrDuplicateTitle}
		}
		return &StorageError{Op: "create movie", Err: err}
	}
	return nil
}

func (s *MovieService) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	m, err := scanMovie(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "get movie", Err: err}
	}
	return m, nil
}

// UpdateReview sets the personal rating and review. No other column is
// touched.
func (s *MovieService) UpdateReview(ctx context.Context, id int, rating float64, review string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE movies SET rating = $1, review = $2 WHERE id = $3`, rating, review, id)
	if err != nil {
		return &StorageError{Op: "update review", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: "update review", Err: err}
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MovieService) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return &StorageError{Op: "delete movie", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: "delete movie", Err: err}
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RecomputeRankings reads the whole collection, assigns fresh rankings and
// persists them, all inside one transaction so a concurrent request never
// sees a half-updated list. Returns the movies ordered best first.
func (s *MovieService) RecomputeRankings(ctx context.Context) ([]models.Movie, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &StorageError{Op: "recompute rankings", Err: err}
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY id`)
	if err != nil {
		return nil, &StorageError{Op: "recompute rankings", Err: err}
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, &StorageError{Op: "recompute rankings", Err: err}
		}
		movies = append(movies, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "recompute rankings", Err: err}
	}

	AssignRankings(movies)

	for _, m := range movies {
		if _, err := tx.ExecContext(ctx, `UPDATE movies SET ranking = $1 WHERE id = $2`, *m.Ranking, m.ID); err != nil {
			return nil, &StorageError{Op: "persist ranking", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, &StorageError{Op: "recompute rankings", Err: err}
	}
	return movies, nil
}
