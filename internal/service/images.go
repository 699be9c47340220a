package service

import "cinescope-service/internal/model"

// Image size classes served by the TMDB CDN
const (
	SizePoster   = "w500"
	SizeProfile  = "w185"
	SizeThumb    = "w92"
	SizeOriginal = "original"
)

// Placeholder assets rendered when a record carries no image path
const (
	PlaceholderProfile = "/assets/placeholder-profile.jpg"
	PlaceholderPoster  = "/assets/placeholder-movie.jpg"
)

// trailerHost is the only video site rendered in the carousel
const trailerHost = "YouTube"

// ImageResolver builds loadable CDN URLs from the relative paths the
// catalog returns. View-models keep paths relative; URL construction is
// a presentation concern.
type ImageResolver struct {
	baseURL string
}

// NewImageResolver creates an ImageResolver with the given CDN base URL
func NewImageResolver(baseURL string) *ImageResolver {
	return &ImageResolver{baseURL: baseURL}
}

// URL joins the CDN base, a size token and a relative path. An empty
// path yields an empty string; callers pick a placeholder.
func (r *ImageResolver) URL(size, path string) string {
	if path == "" {
		return ""
	}
	return r.baseURL + "/" + size + path
}

// PosterURL returns a w500 poster URL or the poster placeholder
func (r *ImageResolver) PosterURL(path string) string {
	if path == "" {
		return PlaceholderPoster
	}
	return r.URL(SizePoster, path)
}

// ProfileURL returns a w185 profile URL or the profile placeholder
func (r *ImageResolver) ProfileURL(path string) string {
	if path == "" {
		return PlaceholderProfile
	}
	return r.URL(SizeProfile, path)
}

// BackdropURL returns a full-size backdrop URL, empty when absent
func (r *ImageResolver) BackdropURL(path string) string {
	return r.URL(SizeOriginal, path)
}

// PlayableTrailers filters a trailer list to the rendered host. The
// view-model keeps the full list; only the carousel is restricted.
func PlayableTrailers(trailers []model.Trailer) []model.Trailer {
	playable := []model.Trailer{}
	for _, trailer := range trailers {
		if trailer.Site == trailerHost {
			playable = append(playable, trailer)
		}
	}
	return playable
}
