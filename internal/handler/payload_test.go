package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinescope-service/internal/model"
	"cinescope-service/internal/service"
)

func testResolver() *service.ImageResolver {
	return service.NewImageResolver("https://image.tmdb.org/t/p")
}

func TestNewDetailPayloadResolvesAssets(t *testing.T) {
	detail := model.MovieDetail{
		ID:         603,
		Title:      "The Matrix",
		PosterPath: "/poster.jpg",
		Backdrops:  []string{"/b1.jpg", "/b2.jpg"},
		Trailers: []model.Trailer{
			{ID: "1", Key: "abc", Site: "YouTube"},
			{ID: "2", Key: "def", Site: "Vimeo"},
		},
	}

	payload := newDetailPayload(detail, testResolver())

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", payload.PosterURL)
	require.Len(t, payload.BackdropURLs, 2)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/b1.jpg", payload.BackdropURLs[0])

	// Only the playable host survives; the raw trailer list stays whole
	require.Len(t, payload.PlayableTrailers, 1)
	assert.Equal(t, "abc", payload.PlayableTrailers[0].Key)
	assert.Len(t, payload.Trailers, 2)
}

func TestNewDetailPayloadMissingPoster(t *testing.T) {
	payload := newDetailPayload(model.MovieDetail{ID: 1}, testResolver())
	assert.Equal(t, service.PlaceholderPoster, payload.PosterURL)
	assert.Empty(t, payload.BackdropURLs)
}

func TestNewShowPayloadResolvesAssets(t *testing.T) {
	detail := model.ShowDetail{
		ID:         1399,
		Name:       "Game of Thrones",
		PosterPath: "/got.jpg",
		Backdrops:  []string{"/wide.jpg"},
		Trailers: []model.Trailer{
			{ID: "1", Key: "xyz", Site: "YouTube"},
		},
	}

	payload := newShowPayload(detail, testResolver())

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/got.jpg", payload.PosterURL)
	assert.Equal(t, []string{"https://image.tmdb.org/t/p/original/wide.jpg"}, payload.BackdropURLs)
	require.Len(t, payload.PlayableTrailers, 1)
	assert.Equal(t, "xyz", payload.PlayableTrailers[0].Key)
}
