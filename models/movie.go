package models

// Movie is a single entry in the ranked list. Rating, Ranking and Review are
// nil until the user has rated the movie; Ranking is recomputed on every list
// view and is only meaningful as of the last render.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
	Ranking     *int     `json:"ranking,omitempty"`
	Review      *string  `json:"review,omitempty"`
	PosterURL   string   `json:"poster_url"`
}
