package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinescope-service/internal/model"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestNormalizeMovieDetailDirector(t *testing.T) {
	raw := &model.TMDBMovieDetail{
		ID:    603,
		Title: "The Matrix",
		Credits: &model.TMDBCredits{
			Crew: []model.TMDBCrewMember{
				{ID: 1, Name: "Joel Silver", Job: "Producer"},
				{ID: 2, Name: "Lana Wachowski", Job: "Director"},
				{ID: 3, Name: "Lilly Wachowski", Job: "Director"},
			},
		},
	}

	detail := NormalizeMovieDetail(raw, "US")
	assert.Equal(t, "Lana Wachowski", detail.Director)
}

func TestNormalizeMovieDetailDirectorMissing(t *testing.T) {
	cases := []*model.TMDBMovieDetail{
		{ID: 1, Title: "No credits at all"},
		{ID: 2, Title: "Crew without a director", Credits: &model.TMDBCredits{
			Crew: []model.TMDBCrewMember{{ID: 1, Name: "Someone", Job: "Editor"}},
		}},
	}

	for _, raw := range cases {
		detail := NormalizeMovieDetail(raw, "US")
		assert.Equal(t, UnknownDirector, detail.Director, raw.Title)
	}
}

func TestNormalizeMovieDetailCastTruncated(t *testing.T) {
	raw := &model.TMDBMovieDetail{
		ID: 1,
		Credits: &model.TMDBCredits{
			Cast: []model.TMDBCastMember{
				{ID: 1, Name: "A"},
				{ID: 2, Name: "B", ProfilePath: strPtr("/b.jpg")},
				{ID: 3, Name: "C"},
				{ID: 4, Name: "D"},
				{ID: 5, Name: "E"},
				{ID: 6, Name: "F"},
			},
		},
	}

	detail := NormalizeMovieDetail(raw, "US")
	require.Len(t, detail.Cast, 4)
	assert.Equal(t, "A", detail.Cast[0].Name)
	assert.Equal(t, "/b.jpg", detail.Cast[1].ProfilePath)
	assert.Equal(t, "D", detail.Cast[3].Name)
}

func TestNormalizeMovieDetailReviewCounters(t *testing.T) {
	raw := &model.TMDBMovieDetail{
		ID: 1,
		Reviews: &model.TMDBReviewList{Results: []model.TMDBReview{
			{ID: "r1", Author: "a", Content: "fine", Likes: intPtr(3), Dislikes: intPtr(1)},
			{ID: "r2", Author: "b", Content: "no counters"},
			{ID: "r3", Author: "c", Content: "negative", Likes: intPtr(-5), Dislikes: intPtr(-1)},
		}},
	}

	detail := NormalizeMovieDetail(raw, "US")
	require.Len(t, detail.Reviews, 3)
	assert.Equal(t, 3, detail.Reviews[0].Likes)
	assert.Equal(t, 1, detail.Reviews[0].Dislikes)
	assert.Equal(t, 0, detail.Reviews[1].Likes)
	assert.Equal(t, 0, detail.Reviews[1].Dislikes)
	assert.Equal(t, 0, detail.Reviews[2].Likes)
	assert.Equal(t, 0, detail.Reviews[2].Dislikes)
}

func TestNormalizeMovieDetailStreamingLinks(t *testing.T) {
	raw := &model.TMDBMovieDetail{
		ID: 1,
		WatchProviders: &model.TMDBWatchProviders{Results: map[string]model.TMDBWatchRegion{
			"US": {
				Link: "https://www.themoviedb.org/movie/1/watch?locale=US",
				Flatrate: []model.TMDBProvider{
					{ProviderName: "Netflix"},
					{ProviderName: "Hulu"},
				},
			},
			"DE": {
				Link:     "https://www.themoviedb.org/movie/1/watch?locale=DE",
				Flatrate: []model.TMDBProvider{{ProviderName: "WOW"}},
			},
		}},
	}

	detail := NormalizeMovieDetail(raw, "US")
	require.Len(t, detail.StreamingLinks, 2)
	assert.Equal(t, "Netflix", detail.StreamingLinks[0].Name)
	assert.Equal(t, "https://www.themoviedb.org/movie/1/watch?locale=US", detail.StreamingLinks[0].URL)
	assert.Equal(t, detail.StreamingLinks[0].URL, detail.StreamingLinks[1].URL)

	// No offers for a region the record does not cover
	detail = NormalizeMovieDetail(raw, "FR")
	assert.Empty(t, detail.StreamingLinks)
}

func TestNormalizeMovieDetailKeepsAllTrailers(t *testing.T) {
	raw := &model.TMDBMovieDetail{
		ID: 1,
		Videos: &model.TMDBVideoList{Results: []model.TMDBVideo{
			{ID: "v1", Key: "abc", Name: "Official Trailer", Site: "YouTube"},
			{ID: "v2", Key: "def", Name: "Featurette", Site: "Vimeo"},
		}},
	}

	detail := NormalizeMovieDetail(raw, "US")
	assert.Len(t, detail.Trailers, 2)
}

func TestNormalizeMovieDetailEmptyCollections(t *testing.T) {
	detail := NormalizeMovieDetail(&model.TMDBMovieDetail{ID: 1, Title: "Sparse"}, "US")

	assert.NotNil(t, detail.Cast)
	assert.NotNil(t, detail.Reviews)
	assert.NotNil(t, detail.Trailers)
	assert.NotNil(t, detail.Backdrops)
	assert.NotNil(t, detail.StreamingLinks)
	assert.Empty(t, detail.Cast)
}

func TestNormalizeShowDetailReviewLength(t *testing.T) {
	raw := &model.TMDBShowDetail{
		ID:   100,
		Name: "Some Show",
		Reviews: &model.TMDBReviewList{Results: []model.TMDBReview{
			{ID: "short", Content: strings.Repeat("x", 299)},
			{ID: "long", Content: strings.Repeat("x", 300)},
			{ID: "multibyte", Content: strings.Repeat("电", 299)},
		}},
	}

	detail := NormalizeShowDetail(raw)
	require.Len(t, detail.Reviews, 2)
	assert.Equal(t, "short", detail.Reviews[0].ID)
	// 299 runes is under the cutoff even when the bytes run well past it
	assert.Equal(t, "multibyte", detail.Reviews[1].ID)
}

func TestNormalizeShowDetailCreatorsAndSeasons(t *testing.T) {
	raw := &model.TMDBShowDetail{
		ID:           1399,
		Name:         "Game of Thrones",
		FirstAirDate: "2011-04-17",
		CreatedBy: []model.TMDBCreator{
			{ID: 9813, Name: "David Benioff"},
			{ID: 228068, Name: "D. B. Weiss"},
		},
		Seasons: []model.TMDBSeason{
			{SeasonNumber: 1, EpisodeCount: 10},
			{SeasonNumber: 2, EpisodeCount: 10},
		},
	}

	detail := NormalizeShowDetail(raw)
	require.Len(t, detail.Creators, 2)
	assert.Equal(t, "David Benioff", detail.Creators[0].Name)
	require.Len(t, detail.Seasons, 2)
	assert.Equal(t, 10, detail.Seasons[1].EpisodeCount)
}

func TestNormalizeActorDetailCreditLimit(t *testing.T) {
	person := &model.TMDBPerson{
		ID:                 500,
		Name:               "Tom Cruise",
		Birthday:           strPtr("1962-07-03"),
		KnownForDepartment: "Acting",
	}
	credits := &model.TMDBPersonCredits{}
	for i := 0; i < 15; i++ {
		credits.Cast = append(credits.Cast, model.TMDBPersonCredit{ID: i + 1, Title: "Movie"})
	}

	detail := NormalizeActorDetail(person, credits)
	assert.Equal(t, "Tom Cruise", detail.Name)
	assert.Equal(t, "1962-07-03", detail.Birthday)
	require.Len(t, detail.MovieCredits, 10)
	assert.Equal(t, 1, detail.MovieCredits[0].ID)
	assert.Equal(t, 10, detail.MovieCredits[9].ID)
}

func TestNormalizeActorDetailNilCredits(t *testing.T) {
	detail := NormalizeActorDetail(&model.TMDBPerson{ID: 1, Name: "Nobody"}, nil)
	assert.NotNil(t, detail.MovieCredits)
	assert.Empty(t, detail.MovieCredits)
}

func TestNormalizeMovieSummary(t *testing.T) {
	item := model.TMDBListItem{
		ID:          27205,
		Title:       "Inception",
		ReleaseDate: "2010-07-15",
		VoteAverage: 8.4,
		PosterPath:  strPtr("/poster.jpg"),
		GenreIDs:    []int{28, 878, 999999},
	}

	summary := NormalizeMovieSummary(item)
	assert.Equal(t, "Inception", summary.Title)
	assert.Equal(t, "2010", summary.Year)
	assert.Equal(t, "/poster.jpg", summary.PosterPath)
	// Unknown genre ids are skipped, not rendered as blanks
	assert.Equal(t, []string{"Action", "Science Fiction"}, summary.Genres)
}

func TestNormalizeMovieListNil(t *testing.T) {
	summaries := NormalizeMovieList(nil)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
