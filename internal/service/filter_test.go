package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinescope-service/internal/model"
)

func sampleMovies() []model.MovieSummary {
	return []model.MovieSummary{
		{ID: 1, Title: "A", Rating: 7.2, Year: "2010", Genres: []string{"Drama"}, Cast: []string{"Leonardo DiCaprio"}},
		{ID: 2, Title: "B", Rating: 6.1, Year: "2010", Genres: []string{"Comedy"}, Cast: []string{"Steve Carell"}},
		{ID: 3, Title: "C", Rating: 8.8, Year: "2014", Genres: []string{"Action", "Science Fiction"}, Cast: []string{"Matthew McConaughey"}},
	}
}

func TestFilterMoviesUnconstrainedIsIdentity(t *testing.T) {
	movies := sampleMovies()

	specs := []model.FilterSpec{
		{},
		{Genre: model.FilterAll, Year: model.FilterAll, Actor: model.FilterAll},
	}
	for _, spec := range specs {
		assert.Equal(t, movies, FilterMovies(movies, spec))
	}
}

func TestFilterMoviesByGenre(t *testing.T) {
	filtered := FilterMovies(sampleMovies(), model.FilterSpec{Genre: "Drama"})

	require.Len(t, filtered, 1)
	assert.Equal(t, "A", filtered[0].Title)
}

func TestFilterMoviesByYear(t *testing.T) {
	filtered := FilterMovies(sampleMovies(), model.FilterSpec{Year: "2010"})

	require.Len(t, filtered, 2)
	// Relative order of survivors is preserved
	assert.Equal(t, "A", filtered[0].Title)
	assert.Equal(t, "B", filtered[1].Title)
}

func TestFilterMoviesByActor(t *testing.T) {
	filtered := FilterMovies(sampleMovies(), model.FilterSpec{Actor: "Matthew McConaughey"})

	require.Len(t, filtered, 1)
	assert.Equal(t, "C", filtered[0].Title)
}

func TestFilterMoviesByMinRating(t *testing.T) {
	filtered := FilterMovies(sampleMovies(), model.FilterSpec{MinRating: 7.2})

	// The lower bound is inclusive
	require.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].Title)
	assert.Equal(t, "C", filtered[1].Title)
}

func TestFilterMoviesRatingUpperBound(t *testing.T) {
	movies := []model.MovieSummary{{ID: 1, Title: "Broken", Rating: 11.0}}
	assert.Empty(t, FilterMovies(movies, model.FilterSpec{}))
}

func TestFilterMoviesConjunction(t *testing.T) {
	movies := sampleMovies()

	filtered := FilterMovies(movies, model.FilterSpec{Year: "2010", MinRating: 7.0})
	require.Len(t, filtered, 1)
	assert.Equal(t, "A", filtered[0].Title)

	// Every dimension must match; a near miss is still a miss
	filtered = FilterMovies(movies, model.FilterSpec{Genre: "Comedy", Year: "2014"})
	assert.Empty(t, filtered)
}

func TestFilterMoviesEmptyInput(t *testing.T) {
	filtered := FilterMovies(nil, model.FilterSpec{Genre: "Drama"})
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}
