package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinescope-service/internal/model"
)

func TestImageResolverURLs(t *testing.T) {
	r := NewImageResolver("https://image.tmdb.org/t/p")

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", r.PosterURL("/poster.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w185/face.jpg", r.ProfileURL("/face.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/original/wide.jpg", r.BackdropURL("/wide.jpg"))
}

func TestImageResolverPlaceholders(t *testing.T) {
	r := NewImageResolver("https://image.tmdb.org/t/p")

	assert.Equal(t, PlaceholderPoster, r.PosterURL(""))
	assert.Equal(t, PlaceholderProfile, r.ProfileURL(""))
	assert.Equal(t, "", r.BackdropURL(""))
}

func TestPlayableTrailers(t *testing.T) {
	trailers := []model.Trailer{
		{ID: "1", Key: "abc", Site: "YouTube"},
		{ID: "2", Key: "def", Site: "Vimeo"},
		{ID: "3", Key: "ghi", Site: "YouTube"},
	}

	playable := PlayableTrailers(trailers)
	require.Len(t, playable, 2)
	assert.Equal(t, "abc", playable[0].Key)
	assert.Equal(t, "ghi", playable[1].Key)
}
