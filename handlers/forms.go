package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// AddForm carries the add-movie form state back into the template.
type AddForm struct {
	Title  string
	Errors map[string]string
}

func parseAddForm(r *http.Request) AddForm {
	f := AddForm{
		Title:  strings.TrimSpace(r.PostFormValue("title")),
		Errors: map[string]string{},
	}
	if f.Title == "" {
		f.Errors["title"] = "Movie title is required"
	}
	return f
}

func (f AddForm) Valid() bool { return len(f.Errors) == 0 }

// EditForm carries the rating/review form state. The raw field values are
// kept as strings so a failed submission re-renders exactly what the user
// typed.
type EditForm struct {
	Rating string
	Review string
	Errors map[string]string

	rating float64
}

func parseEditForm(r *http.Request) EditForm {
	f := EditForm{
		Rating: strings.TrimSpace(r.PostFormValue("rating")),
		Review: strings.TrimSpace(r.PostFormValue("review")),
		Errors: map[string]string{},
	}

	if f.Rating == "" {
		f.Errors["rating"] = "Rating is required"
	} else if v, err := strconv.ParseFloat(f.Rating, 64); err != nil {
		f.Errors["rating"] = "Rating must be a number"
	} else {
		f.rating = v
	}

	if f.Review == "" {
		f.Errors["review"] = "Review is required"
	}
	return f
}

func (f EditForm) Valid() bool { return len(f.Errors) == 0 }
