package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"Reelrank/models"
)

// posterBaseURL turns a TMDB poster path into a fully-qualified image URL.
const posterBaseURL = "https://image.tmdb.org/t/p/w500"

type addData struct {
	Form AddForm
}

type selectData struct {
	Query   string
	Results []models.SearchResult
}

// AddPage shows the title search form.
func (h *Handler) AddPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.addTmpl, http.StatusOK, addData{Form: AddForm{Errors: map[string]string{}}})
}

// AddSubmit is phase one of the add flow: search the provider and let the
// user pick a candidate.
func (h *Handler) AddSubmit(w http.ResponseWriter, r *http.Request) {
	form := parseAddForm(r)
	if !form.Valid() {
		h.render(w, h.addTmpl, http.StatusUnprocessableEntity, addData{Form: form})
		return
	}

	results, err := h.metadata.SearchMovies(r.Context(), form.Title)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, h.selectTmpl, http.StatusOK, selectData{Query: form.Title, Results: results})
}

// Details is phase two: fetch the chosen candidate's full record, persist it
// and drop the user into the edit form. Nothing is persisted when the detail
// fetch fails.
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	externalID := r.URL.Query().Get("id")
	if externalID == "" {
		http.NotFound(w, r)
		return
	}

	details, err := h.metadata.MovieDetails(r.Context(), externalID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	movie := &models.Movie{
		Title:       details.OriginalTitle,
		Year:        releaseYear(details.ReleaseDate),
		Description: details.Overview,
		PosterURL:   posterBaseURL + details.PosterPath,
	}

	if err := h.store.Create(r.Context(), movie); err != nil {
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/edit?id=%d", movie.ID), http.StatusSeeOther)
}

func releaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, _ := strconv.Atoi(releaseDate[:4])
	return year
}
