package service

import "strings"

// movieGenreNames is the TMDB movie genre id table. List endpoints only
// return genre ids; details return full genre objects.
var movieGenreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// preferenceGenreIDs maps the profile preference names to genre ids.
// Only these genres are selectable on the profile surface.
var preferenceGenreIDs = map[string]int{
	"Action":          28,
	"Comedy":          35,
	"Drama":           18,
	"Fantasy":         14,
	"Horror":          27,
	"Mystery":         9648,
	"Romance":         10749,
	"Science Fiction": 878,
	"Thriller":        53,
	"Western":         37,
}

// GenreNames resolves genre ids to names, skipping unknown ids
func GenreNames(ids []int) []string {
	names := []string{}
	for _, id := range ids {
		if name, ok := movieGenreNames[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// PreferenceGenreIDs parses a comma-delimited preference string into
// genre ids, dropping names outside the selectable set
func PreferenceGenreIDs(preferences string) []int {
	ids := []int{}
	for _, name := range strings.Split(preferences, ",") {
		if id, ok := preferenceGenreIDs[strings.TrimSpace(name)]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
