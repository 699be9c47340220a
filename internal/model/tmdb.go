package model

// Raw TMDB wire shapes. Every nested sub-resource is optional: the API
// only includes what append_to_response asked for, and individual
// fields go missing on sparse records. Normalization handles absence in
// one place instead of scattered nil checks.

// TMDBGenre is a genre entry on a detail record
type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TMDBCastMember is a cast credit inside a credits block
type TMDBCastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

// TMDBCrewMember is a crew credit inside a credits block
type TMDBCrewMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// TMDBCredits is the appended credits sub-resource
type TMDBCredits struct {
	Cast []TMDBCastMember `json:"cast"`
	Crew []TMDBCrewMember `json:"crew"`
}

// TMDBReview is one review result
type TMDBReview struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Content  string `json:"content"`
	Likes    *int   `json:"likes"`
	Dislikes *int   `json:"dislikes"`
}

// TMDBReviewList is the appended reviews sub-resource
type TMDBReviewList struct {
	Results []TMDBReview `json:"results"`
}

// TMDBVideo is one video result
type TMDBVideo struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
}

// TMDBVideoList is the appended videos sub-resource
type TMDBVideoList struct {
	Results []TMDBVideo `json:"results"`
}

// TMDBImage is one image entry
type TMDBImage struct {
	FilePath string `json:"file_path"`
}

// TMDBImageList is the appended images sub-resource
type TMDBImageList struct {
	Backdrops []TMDBImage `json:"backdrops"`
}

// TMDBProvider is one streaming provider offer
type TMDBProvider struct {
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

// TMDBWatchRegion holds the offers for one region. The link is
// region-level; individual providers carry no URL of their own.
type TMDBWatchRegion struct {
	Link     string         `json:"link"`
	Flatrate []TMDBProvider `json:"flatrate"`
}

// TMDBWatchProviders is the appended watch/providers sub-resource
type TMDBWatchProviders struct {
	Results map[string]TMDBWatchRegion `json:"results"`
}

// TMDBMovieDetail is a movie detail record with appended sub-resources
type TMDBMovieDetail struct {
	ID               int                 `json:"id"`
	Title            string              `json:"title"`
	Overview         string              `json:"overview"`
	OriginalLanguage string              `json:"original_language"`
	ReleaseDate      string              `json:"release_date"`
	Revenue          int64               `json:"revenue"`
	Runtime          int                 `json:"runtime"`
	VoteAverage      float64             `json:"vote_average"`
	PosterPath       *string             `json:"poster_path"`
	Genres           []TMDBGenre         `json:"genres"`
	Credits          *TMDBCredits        `json:"credits"`
	Reviews          *TMDBReviewList     `json:"reviews"`
	Videos           *TMDBVideoList      `json:"videos"`
	Images           *TMDBImageList      `json:"images"`
	WatchProviders   *TMDBWatchProviders `json:"watch/providers"`
}

// TMDBCreator is a show creator credit
type TMDBCreator struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TMDBSeason is one season entry on a show record
type TMDBSeason struct {
	SeasonNumber int `json:"season_number"`
	EpisodeCount int `json:"episode_count"`
}

// TMDBShowDetail is a TV detail record with appended sub-resources
type TMDBShowDetail struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Overview         string          `json:"overview"`
	OriginalLanguage string          `json:"original_language"`
	FirstAirDate     string          `json:"first_air_date"`
	VoteAverage      float64         `json:"vote_average"`
	PosterPath       *string         `json:"poster_path"`
	Genres           []TMDBGenre     `json:"genres"`
	CreatedBy        []TMDBCreator   `json:"created_by"`
	Seasons          []TMDBSeason    `json:"seasons"`
	Credits          *TMDBCredits    `json:"credits"`
	Reviews          *TMDBReviewList `json:"reviews"`
	Videos           *TMDBVideoList  `json:"videos"`
	Images           *TMDBImageList  `json:"images"`
}

// TMDBPerson is a person detail record
type TMDBPerson struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Biography          string  `json:"biography"`
	Birthday           *string `json:"birthday"`
	Deathday           *string `json:"deathday"`
	PlaceOfBirth       *string `json:"place_of_birth"`
	ProfilePath        *string `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

// TMDBPersonCredit is one cast credit on a person's filmography
type TMDBPersonCredit struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Character  string  `json:"character"`
	PosterPath *string `json:"poster_path"`
}

// TMDBPersonCredits is the movie_credits response for a person
type TMDBPersonCredits struct {
	Cast []TMDBPersonCredit `json:"cast"`
}

// TMDBListItem is one entry of a paged list or search response.
// Movies carry title/release_date, shows name/first_air_date.
type TMDBListItem struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ProfilePath  *string `json:"profile_path"`
	GenreIDs     []int   `json:"genre_ids"`
}

// TMDBList is a paged list response
type TMDBList struct {
	Page         int            `json:"page"`
	Results      []TMDBListItem `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// DisplayTitle returns the movie title or the show name, whichever is set
func (m *TMDBListItem) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// ReleaseYear returns the four-digit year of the release or first-air date
func (m *TMDBListItem) ReleaseYear() string {
	date := m.ReleaseDate
	if date == "" {
		date = m.FirstAirDate
	}
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}
