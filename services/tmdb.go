package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Reelrank/config"
	"Reelrank/models"
)

// tmdbLanguage is sent on every request to the provider.
const tmdbLanguage = "en-US"

// TMDB is the client for the movie metadata provider. Credential, base URL
// and language are fixed at construction so nothing request-scoped mutates
// shared state.
type TMDB struct {
	baseURL string
	auth    string
	client  *http.Client
}

func NewTMDB(cfg *config.Config) *TMDB {
	return &TMDB{
		baseURL: cfg.TMDBBaseURL,
		auth:    cfg.TMDBAuth,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SearchMovies runs a title search and returns the provider's candidate list
// verbatim.
func (t *TMDB) SearchMovies(ctx context.Context, query string) ([]models.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/search/movie?query=%s&language=%s",
		t.baseURL, url.QueryEscape(query), tmdbLanguage)

	var payload struct {
		Results []models.SearchResult `json:"results"`
	}
	if err := t.get(ctx, "search", endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// MovieDetails fetches the full record for one provider id.
func (t *TMDB) MovieDetails(ctx context.Context, externalID string) (*models.MovieDetails, error) {
	endpoint := fmt.Sprintf("%s/movie/%s?language=%s",
		t.baseURL, url.PathEscape(externalID), tmdbLanguage)

	var details models.MovieDetails
	if err := t.get(ctx, "details", endpoint, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (t *TMDB) get(ctx context.Context, name, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &UpstreamError{Endpoint: name, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", t.auth)

	resp, err := t.client.Do(req)
	if err != nil {
		return &UpstreamError{Endpoint: name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Endpoint: name, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Endpoint: name, Err: err}
	}
	return nil
}
