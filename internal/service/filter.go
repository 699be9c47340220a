package service

import "cinescope-service/internal/model"

// FilterMovies returns the subsequence of summaries satisfying every
// FilterSpec predicate, preserving the input's relative order. An empty
// result is valid and distinct from a failure.
//
// The upper rating bound is the fixed model.MaxRating constant: the
// catalog scale tops out there and no surface adjusts it.
func FilterMovies(movies []model.MovieSummary, spec model.FilterSpec) []model.MovieSummary {
	filtered := []model.MovieSummary{}
	for _, movie := range movies {
		if matchesGenre(movie, spec.Genre) &&
			matchesYear(movie, spec.Year) &&
			matchesActor(movie, spec.Actor) &&
			matchesRating(movie, spec.MinRating) {
			filtered = append(filtered, movie)
		}
	}
	return filtered
}

func matchesGenre(movie model.MovieSummary, genre string) bool {
	if unconstrained(genre) {
		return true
	}
	for _, g := range movie.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// matchesYear compares years as text, matching how year selections are
// carried through the filter controls
func matchesYear(movie model.MovieSummary, year string) bool {
	if unconstrained(year) {
		return true
	}
	return movie.Year == year
}

func matchesActor(movie model.MovieSummary, actor string) bool {
	if unconstrained(actor) {
		return true
	}
	for _, name := range movie.Cast {
		if name == actor {
			return true
		}
	}
	return false
}

func matchesRating(movie model.MovieSummary, minRating float64) bool {
	return movie.Rating >= minRating && movie.Rating <= model.MaxRating
}

func unconstrained(value string) bool {
	return value == "" || value == model.FilterAll
}
