package service

import (
	"unicode/utf8"

	"cinescope-service/internal/model"
)

// UnknownDirector is substituted when no crew entry carries the
// Director job
const UnknownDirector = "Unknown Director"

const (
	// castLimit caps the cast list on movie and show details
	castLimit = 4
	// actorCreditLimit caps an actor's own filmography
	actorCreditLimit = 10
	// showReviewMaxLen drops show reviews at or above this rune count
	showReviewMaxLen = 300
)

// NormalizeMovieSummary maps one list entry into a MovieSummary.
// Genre ids are resolved to names; unknown ids are skipped.
func NormalizeMovieSummary(item model.TMDBListItem) model.MovieSummary {
	return model.MovieSummary{
		ID:           item.ID,
		Title:        item.DisplayTitle(),
		Rating:       item.VoteAverage,
		Year:         item.ReleaseYear(),
		PosterPath:   deref(item.PosterPath),
		BackdropPath: deref(item.BackdropPath),
		Genres:       GenreNames(item.GenreIDs),
	}
}

// NormalizeMovieList maps a paged list response into summaries,
// preserving source order
func NormalizeMovieList(list *model.TMDBList) []model.MovieSummary {
	if list == nil {
		return []model.MovieSummary{}
	}
	summaries := make([]model.MovieSummary, 0, len(list.Results))
	for _, item := range list.Results {
		summaries = append(summaries, NormalizeMovieSummary(item))
	}
	return summaries
}

// NormalizeMovieDetail maps a raw movie record into a MovieDetail.
// The director is the first crew entry whose job is exactly "Director";
// streaming offers come from the given region's flat-rate block. Both
// degrade to documented defaults when the nested data is missing.
func NormalizeMovieDetail(raw *model.TMDBMovieDetail, region string) model.MovieDetail {
	detail := model.MovieDetail{
		ID:             raw.ID,
		Title:          raw.Title,
		Overview:       raw.Overview,
		Language:       raw.OriginalLanguage,
		Director:       UnknownDirector,
		BoxOffice:      raw.Revenue,
		ReleaseDate:    raw.ReleaseDate,
		Genres:         genreList(raw.Genres),
		Runtime:        raw.Runtime,
		Rating:         raw.VoteAverage,
		PosterPath:     deref(raw.PosterPath),
		Cast:           []model.CastMember{},
		Reviews:        []model.Review{},
		Trailers:       []model.Trailer{},
		Backdrops:      []string{},
		StreamingLinks: []model.StreamingOffer{},
	}

	if raw.Credits != nil {
		for _, member := range raw.Credits.Crew {
			if member.Job == "Director" {
				detail.Director = member.Name
				break
			}
		}
		detail.Cast = normalizeCast(raw.Credits.Cast, castLimit)
	}

	if raw.Reviews != nil {
		for _, review := range raw.Reviews.Results {
			detail.Reviews = append(detail.Reviews, normalizeReview(review))
		}
	}

	detail.Trailers = normalizeTrailers(raw.Videos)
	detail.Backdrops = normalizeBackdrops(raw.Images)

	if raw.WatchProviders != nil {
		if regionBlock, ok := raw.WatchProviders.Results[region]; ok {
			for _, provider := range regionBlock.Flatrate {
				detail.StreamingLinks = append(detail.StreamingLinks, model.StreamingOffer{
					Name: provider.ProviderName,
					URL:  regionBlock.Link,
				})
			}
		}
	}

	return detail
}

// NormalizeShowDetail maps a raw TV record into a ShowDetail. Reviews
// at or above 300 characters are dropped outright, not truncated.
func NormalizeShowDetail(raw *model.TMDBShowDetail) model.ShowDetail {
	detail := model.ShowDetail{
		ID:           raw.ID,
		Name:         raw.Name,
		Overview:     raw.Overview,
		Language:     raw.OriginalLanguage,
		Creators:     []model.Creator{},
		FirstAirDate: raw.FirstAirDate,
		Genres:       genreList(raw.Genres),
		Seasons:      []model.Season{},
		Rating:       raw.VoteAverage,
		PosterPath:   deref(raw.PosterPath),
		Cast:         []model.CastMember{},
		Reviews:      []model.Review{},
		Trailers:     []model.Trailer{},
		Backdrops:    []string{},
	}

	for _, creator := range raw.CreatedBy {
		detail.Creators = append(detail.Creators, model.Creator{ID: creator.ID, Name: creator.Name})
	}
	for _, season := range raw.Seasons {
		detail.Seasons = append(detail.Seasons, model.Season{
			SeasonNumber: season.SeasonNumber,
			EpisodeCount: season.EpisodeCount,
		})
	}

	if raw.Credits != nil {
		detail.Cast = normalizeCast(raw.Credits.Cast, castLimit)
	}

	if raw.Reviews != nil {
		for _, review := range raw.Reviews.Results {
			if utf8.RuneCountInString(review.Content) >= showReviewMaxLen {
				continue
			}
			detail.Reviews = append(detail.Reviews, normalizeReview(review))
		}
	}

	detail.Trailers = normalizeTrailers(raw.Videos)
	detail.Backdrops = normalizeBackdrops(raw.Images)

	return detail
}

// NormalizeActorDetail merges a person record with their movie credits
// into an ActorDetail, keeping the first ten credits in source order
func NormalizeActorDetail(person *model.TMDBPerson, credits *model.TMDBPersonCredits) model.ActorDetail {
	detail := model.ActorDetail{
		ID:           person.ID,
		Name:         person.Name,
		Biography:    person.Biography,
		Birthday:     deref(person.Birthday),
		Deathday:     deref(person.Deathday),
		PlaceOfBirth: deref(person.PlaceOfBirth),
		ProfilePath:  deref(person.ProfilePath),
		Department:   person.KnownForDepartment,
		Popularity:   person.Popularity,
		MovieCredits: []model.ActorCredit{},
	}

	if credits != nil {
		for i, credit := range credits.Cast {
			if i >= actorCreditLimit {
				break
			}
			detail.MovieCredits = append(detail.MovieCredits, model.ActorCredit{
				ID:         credit.ID,
				Title:      credit.Title,
				Character:  credit.Character,
				PosterPath: deref(credit.PosterPath),
			})
		}
	}

	return detail
}

func normalizeCast(cast []model.TMDBCastMember, limit int) []model.CastMember {
	members := []model.CastMember{}
	for i, member := range cast {
		if i >= limit {
			break
		}
		members = append(members, model.CastMember{
			ID:          member.ID,
			Name:        member.Name,
			ProfilePath: deref(member.ProfilePath),
		})
	}
	return members
}

// normalizeReview zeroes missing vote counters and clamps negatives
func normalizeReview(review model.TMDBReview) model.Review {
	likes := 0
	if review.Likes != nil && *review.Likes > 0 {
		likes = *review.Likes
	}
	dislikes := 0
	if review.Dislikes != nil && *review.Dislikes > 0 {
		dislikes = *review.Dislikes
	}
	return model.Review{
		ID:       review.ID,
		Author:   review.Author,
		Content:  review.Content,
		Likes:    likes,
		Dislikes: dislikes,
	}
}

// normalizeTrailers keeps every video in the view-model; restricting
// the carousel to a single host happens at the presentation boundary
func normalizeTrailers(videos *model.TMDBVideoList) []model.Trailer {
	trailers := []model.Trailer{}
	if videos == nil {
		return trailers
	}
	for _, video := range videos.Results {
		trailers = append(trailers, model.Trailer{
			ID:   video.ID,
			Key:  video.Key,
			Name: video.Name,
			Site: video.Site,
		})
	}
	return trailers
}

func normalizeBackdrops(images *model.TMDBImageList) []string {
	backdrops := []string{}
	if images == nil {
		return backdrops
	}
	for _, image := range images.Backdrops {
		backdrops = append(backdrops, image.FilePath)
	}
	return backdrops
}

func genreList(genres []model.TMDBGenre) []string {
	names := []string{}
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
