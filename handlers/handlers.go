package handlers

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"Reelrank/models"
	"Reelrank/services"
	"Reelrank/templates"

	"github.com/gorilla/sessions"
)

// MovieStore is the persistence surface the handlers depend on.
type MovieStore interface {
	Create(ctx context.Context, m *models.Movie) error
	GetByID(ctx context.Context, id int) (*models.Movie, error)
	UpdateReview(ctx context.Context, id int, rating float64, review string) error
	Delete(ctx context.Context, id int) error
	RecomputeRankings(ctx context.Context) ([]models.Movie, error)
}

// MetadataClient is the upstream movie metadata surface.
type MetadataClient interface {
	SearchMovies(ctx context.Context, query string) ([]models.SearchResult, error)
	MovieDetails(ctx context.Context, externalID string) (*models.MovieDetails, error)
}

type Handler struct {
	store    MovieStore
	metadata MetadataClient
	sessions *sessions.CookieStore

	indexTmpl  *template.Template
	addTmpl    *template.Template
	selectTmpl *template.Template
	editTmpl   *template.Template
}

func New(store MovieStore, metadata MetadataClient, sessionStore *sessions.CookieStore) (*Handler, error) {
	h := &Handler{
		store:    store,
		metadata: metadata,
		sessions: sessionStore,
	}

	var err error
	if h.indexTmpl, err = loadTemplate("index", "pages/index.html"); err != nil {
		return nil, err
	}
	if h.addTmpl, err = loadTemplate("add", "pages/add.html"); err != nil {
		return nil, err
	}
	if h.selectTmpl, err = loadTemplate("select", "pages/select.html"); err != nil {
		return nil, err
	}
	if h.editTmpl, err = loadTemplate("edit", "pages/edit.html"); err != nil {
		return nil, err
	}
	return h, nil
}

func loadTemplate(name, page string) (*template.Template, error) {
	tmpl, err := template.New(name).ParseFS(templates.Files, "layouts/base.html", page)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, status int, data any) {
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Template render failed", "template", tmpl.Name(), "error", err)
	}
}

// renderError maps the service error taxonomy onto HTTP responses: missing
// records become 404, upstream failures 502, everything else 500.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *services.UpstreamError
	switch {
	case errors.Is(err, services.ErrNotFound):
		http.NotFound(w, r)
	case errors.As(err, &upstream):
		slog.Error("Metadata provider call failed", "error", err)
		http.Error(w, "The movie metadata service is unavailable. Try again later.", http.StatusBadGateway)
	default:
		slog.Error("Request failed", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// parseIDFromQuery extracts and parses an integer id from query parameters.
func parseIDFromQuery(r *http.Request, param string) (int, error) {
	idStr := r.URL.Query().Get(param)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s parameter", param)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", param)
	}
	return id, nil
}

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, msg string) {
	session, err := h.sessions.Get(r, services.SessionName)
	if err != nil {
		return
	}
	session.AddFlash(msg)
	if err := session.Save(r, w); err != nil {
		slog.Warn("Failed to save session", "error", err)
	}
}

func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	session, err := h.sessions.Get(r, services.SessionName)
	if err != nil {
		return ""
	}
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	if err := session.Save(r, w); err != nil {
		slog.Warn("Failed to save session", "error", err)
	}
	msg, _ := flashes[0].(string)
	return msg
}
