package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"Reelrank/models"
)

type homeData struct {
	Movies []models.Movie
	Flash  string
}

type editData struct {
	Movie *models.Movie
	Form  EditForm
}

// Home renders the ranked list. Listing recomputes and persists rankings as a
// side effect, so the page always shows a dense 1..N order.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	flash := h.popFlash(w, r)

	movies, err := h.store.RecomputeRankings(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, h.indexTmpl, http.StatusOK, homeData{Movies: movies, Flash: flash})
}

// EditPage shows the rating/review form pre-filled with the current values.
func (h *Handler) EditPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDFromQuery(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	movie, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form := EditForm{Errors: map[string]string{}}
	if movie.Rating != nil {
		form.Rating = strconv.FormatFloat(*movie.Rating, 'f', -1, 64)
	}
	if movie.Review != nil {
		form.Review = *movie.Review
	}

	h.render(w, h.editTmpl, http.StatusOK, editData{Movie: movie, Form: form})
}

// EditSubmit updates rating and review only; every other field is untouched.
func (h *Handler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDFromQuery(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form := parseEditForm(r)
	if !form.Valid() {
		movie, err := h.store.GetByID(r.Context(), id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		h.render(w, h.editTmpl, http.StatusUnprocessableEntity, editData{Movie: movie, Form: form})
		return
	}

	if err := h.store.UpdateReview(r.Context(), id, form.rating, form.Review); err != nil {
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete removes a movie and bounces back to the list.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDFromQuery(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	movie, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	h.addFlash(w, r, fmt.Sprintf("Removed %q from your list", movie.Title))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
