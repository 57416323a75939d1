package services

import (
	"sort"

	"Reelrank/models"
)

// AssignRankings orders movies by personal rating, best first, and assigns
// dense 1-based rankings in place. Unrated movies sort after every rated one;
// equal ratings keep their incoming order.
func AssignRankings(movies []models.Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		ri, rj := movies[i].Rating, movies[j].Rating
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		default:
			return *ri > *rj
		}
	})

	for i := range movies {
		rank := i + 1
		movies[i].Ranking = &rank
	}
}
