package handlers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"Reelrank/models"
	"Reelrank/services"

	"github.com/gorilla/sessions"
)

// fakeStore is an in-memory MovieStore with the same semantics as the SQL
// store: unique titles, dense rankings, not-found sentinels.
type fakeStore struct {
	movies map[int]*models.Movie
	nextID int
}

func newFakeStore(seed ...models.Movie) *fakeStore {
	s := &fakeStore{movies: map[int]*models.Movie{}}
	for _, m := range seed {
		m := m
		if m.ID == 0 {
			s.nextID++
			m.ID = s.nextID
		} else if m.ID > s.nextID {
			s.nextID = m.ID
		}
		s.movies[m.ID] = &m
	}
	return s
}

func (s *fakeStore) Create(ctx context.Context, m *models.Movie) error {
	for _, existing := range s.movies {
		if existing.Title == m.Title {
			return &services.StorageError{Op: "create movie", Err: services.ErrDuplicateTitle}
		}
	}
	s.nextID++
	m.ID = s.nextID
	cp := *m
	s.movies[m.ID] = &cp
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	m, ok := s.movies[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *fakeStore) UpdateReview(ctx context.Context, id int, rating float64, review string) error {
	m, ok := s.movies[id]
	if !ok {
		return services.ErrNotFound
	}
	m.Rating = &rating
	m.Review = &review
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id int) error {
	if _, ok := s.movies[id]; !ok {
		return services.ErrNotFound
	}
	delete(s.movies, id)
	return nil
}

func (s *fakeStore) RecomputeRankings(ctx context.Context) ([]models.Movie, error) {
	ids := make([]int, 0, len(s.movies))
	for id := range s.movies {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	movies := make([]models.Movie, 0, len(ids))
	for _, id := range ids {
		movies = append(movies, *s.movies[id])
	}

	services.AssignRankings(movies)

	for i := range movies {
		rank := *movies[i].Ranking
		s.movies[movies[i].ID].Ranking = &rank
	}
	return movies, nil
}

// fakeMetadata is a canned MetadataClient that records what was asked of it.
type fakeMetadata struct {
	results []models.SearchResult
	details map[string]models.MovieDetails
	err     error

	lastQuery    string
	lastDetailID string
}

func (f *fakeMetadata) SearchMovies(ctx context.Context, query string) ([]models.SearchResult, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeMetadata) MovieDetails(ctx context.Context, externalID string) (*models.MovieDetails, error) {
	f.lastDetailID = externalID
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.details[externalID]
	if !ok {
		return nil, &services.UpstreamError{Endpoint: "details", Status: 404}
	}
	return &d, nil
}

var errDown = errors.New("database unavailable")

// failingStore errors on every call.
type failingStore struct{}

func (failingStore) Create(ctx context.Context, m *models.Movie) error {
	return &services.StorageError{Op: "create movie", Err: errDown}
}

func (failingStore) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	return nil, &services.StorageError{Op: "get movie", Err: errDown}
}

func (failingStore) UpdateReview(ctx context.Context, id int, rating float64, review string) error {
	return &services.StorageError{Op: "update review", Err: errDown}
}

func (failingStore) Delete(ctx context.Context, id int) error {
	return &services.StorageError{Op: "delete movie", Err: errDown}
}

func (failingStore) RecomputeRankings(ctx context.Context) ([]models.Movie, error) {
	return nil, &services.StorageError{Op: "recompute rankings", Err: errDown}
}

func newTestHandler(t *testing.T, store MovieStore, metadata MetadataClient) *Handler {
	t.Helper()
	h, err := New(store, metadata, sessions.NewCookieStore([]byte("test-secret")))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return h
}

func ratedMovie(id int, title string, rating float64) models.Movie {
	review := fmt.Sprintf("review of %s", title)
	return models.Movie{
		ID:          id,
		Title:       title,
		Year:        2000 + id,
		Description: fmt.Sprintf("description of %s", title),
		Rating:      &rating,
		Review:      &review,
		PosterURL:   fmt.Sprintf("https://image.tmdb.org/t/p/w500/%d.jpg", id),
	}
}
