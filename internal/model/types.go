package model

import "time"

// ================== API envelope ==================

// APIResponse is the standard API response format
type APIResponse struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Source  string      `json:"source,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ================== Catalog view-models ==================

// MovieSummary is a list-level movie entry. Immutable once fetched;
// lists are re-fetched wholesale, never patched field by field.
type MovieSummary struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Rating       float64  `json:"rating"`
	Year         string   `json:"year"`
	PosterPath   string   `json:"poster_path,omitempty"`
	BackdropPath string   `json:"backdrop_path,omitempty"`
	Genres       []string `json:"genres"`
	Cast         []string `json:"cast,omitempty"`
}

// CastMember is a credited cast entry on a movie or show
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Review is a catalog review with vote counters, never negative
type Review struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Content  string `json:"content"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}

// Trailer is a promotional video attached to a title
type Trailer struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
}

// StreamingOffer is a flat-rate subscription offer for one provider
type StreamingOffer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MovieDetail is the full movie view-model
type MovieDetail struct {
	ID             int              `json:"id"`
	Title          string           `json:"title"`
	Overview       string           `json:"overview"`
	Language       string           `json:"language"`
	Director       string           `json:"director"`
	BoxOffice      int64            `json:"box_office"`
	ReleaseDate    string           `json:"release_date"`
	Genres         []string         `json:"genres"`
	Runtime        int              `json:"runtime"`
	Rating         float64          `json:"rating"`
	PosterPath     string           `json:"poster_path,omitempty"`
	Cast           []CastMember     `json:"cast"`
	Reviews        []Review         `json:"reviews"`
	Trailers       []Trailer        `json:"trailers"`
	Backdrops      []string         `json:"backdrops"`
	StreamingLinks []StreamingOffer `json:"streaming_links"`
}

// ActorCredit is one movie on an actor's filmography
type ActorCredit struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Character  string `json:"character"`
	PosterPath string `json:"poster_path,omitempty"`
}

// ActorDetail is the full person view-model
type ActorDetail struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Biography    string        `json:"biography"`
	Birthday     string        `json:"birthday,omitempty"`
	Deathday     string        `json:"deathday,omitempty"`
	PlaceOfBirth string        `json:"place_of_birth,omitempty"`
	ProfilePath  string        `json:"profile_path,omitempty"`
	Department   string        `json:"department"`
	Popularity   float64       `json:"popularity"`
	MovieCredits []ActorCredit `json:"movie_credits"`
}

// Season summarizes one season of a show
type Season struct {
	SeasonNumber int `json:"season_number"`
	EpisodeCount int `json:"episode_count"`
}

// Creator is a show creator credit
type Creator struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ShowDetail is the full TV show view-model
type ShowDetail struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Overview     string       `json:"overview"`
	Language     string       `json:"language"`
	Creators     []Creator    `json:"creators"`
	FirstAirDate string       `json:"first_air_date"`
	Genres       []string     `json:"genres"`
	Seasons      []Season     `json:"seasons"`
	Rating       float64      `json:"rating"`
	PosterPath   string       `json:"poster_path,omitempty"`
	Cast         []CastMember `json:"cast"`
	Reviews      []Review     `json:"reviews"`
	Trailers     []Trailer    `json:"trailers"`
	Backdrops    []string     `json:"backdrops"`
}

// ================== Favorites ==================

// FavoriteActor is the persisted shape of a favorited actor.
// Unique by ID; insertion order is preserved for display.
type FavoriteActor struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// ================== Filtering ==================

// FilterAll is the sentinel for an unconstrained filter dimension
const FilterAll = "All"

// MaxRating is the fixed upper rating bound. The catalog scale tops out
// at 10 and no surface exposes a control for the upper bound, so it
// stays a constant rather than a FilterSpec field.
const MaxRating = 10.0

// FilterSpec selects a subset of a movie list. Zero-value strings are
// treated the same as FilterAll.
type FilterSpec struct {
	Genre     string  `json:"genre"`
	Year      string  `json:"year"`
	Actor     string  `json:"actor"`
	MinRating float64 `json:"min_rating"`
}

// ================== Search ==================

// SearchResultItem is one entry of a multi-entity search
type SearchResultItem struct {
	ID          int     `json:"id"`
	MediaType   string  `json:"media_type"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ProfilePath string  `json:"profile_path,omitempty"`
	Year        string  `json:"year,omitempty"`
	Rating      float64 `json:"rating"`
}

// SearchGroups holds multi-search results partitioned by entity kind,
// each group in source order
type SearchGroups struct {
	Movies  []SearchResultItem `json:"movies"`
	TVShows []SearchResultItem `json:"tv_shows"`
	Actors  []SearchResultItem `json:"actors"`
}

// ================== Account documents ==================

// User is an account record
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile holds the per-user profile document. Preferences is a
// comma-delimited genre list, matching the stored wire format.
type Profile struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
	Preferences    string `json:"preferences"`
}

// WatchlistEntry is one saved title on a user's watchlist
type WatchlistEntry struct {
	ID          string   `json:"id"`
	MovieID     int      `json:"movie_id"`
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	Genres      []string `json:"genres"`
	PosterPath  string   `json:"poster_path"`
}

// UserRatingMax bounds the rating-submission scale. Distinct from the
// 0-10 catalog scale; the two are never merged.
const UserRatingMax = 5.0

// RatingEntry is a user's rating of one title, keyed by movie id
type RatingEntry struct {
	MovieID    int       `json:"movie_id"`
	Title      string    `json:"title"`
	PosterPath string    `json:"poster_path"`
	Rating     float64   `json:"rating"`
	Timestamp  time.Time `json:"timestamp"`
}

// UserReview is a free-form review written by a user
type UserReview struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}
