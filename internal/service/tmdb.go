package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"cinescope-service/internal/model"
	"cinescope-service/pkg/httpclient"
)

// listCastLimit caps how many credited names a list entry carries for
// actor matching
const listCastLimit = 10

// TMDBService wraps the TMDB catalog API with key rotation
type TMDBService struct {
	apiKeys  []string
	baseURL  string
	client   *httpclient.Client
	keyIndex uint64
}

// NewTMDBService creates a new TMDBService with multiple API keys
func NewTMDBService(apiKeys []string, baseURL string, client *httpclient.Client) *TMDBService {
	return &TMDBService{
		apiKeys: apiKeys,
		baseURL: baseURL,
		client:  client,
	}
}

// IsConfigured returns true if at least one API key is set
func (s *TMDBService) IsConfigured() bool {
	return len(s.apiKeys) > 0
}

// KeyCount returns the number of configured API keys
func (s *TMDBService) KeyCount() int {
	return len(s.apiKeys)
}

// getNextKey returns the next API key using round-robin
func (s *TMDBService) getNextKey() string {
	if len(s.apiKeys) == 0 {
		return ""
	}
	idx := atomic.AddUint64(&s.keyIndex, 1) - 1
	return s.apiKeys[idx%uint64(len(s.apiKeys))]
}

// get fetches a TMDB path with the API key attached and decodes into dest
func (s *TMDBService) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	apiKey := s.getNextKey()
	if apiKey == "" {
		return fmt.Errorf("TMDB API key not configured")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", apiKey)

	data, err := s.client.Fetch(ctx, s.baseURL+path+"?"+params.Encode())
	if err != nil {
		return fmt.Errorf("TMDB request failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse TMDB response: %w", err)
	}
	return nil
}

// TrendingMovies returns this week's trending movies
func (s *TMDBService) TrendingMovies(ctx context.Context) (*model.TMDBList, error) {
	var list model.TMDBList
	if err := s.get(ctx, "/trending/movie/week", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpcomingMovies returns upcoming theatrical releases
func (s *TMDBService) UpcomingMovies(ctx context.Context) (*model.TMDBList, error) {
	var list model.TMDBList
	if err := s.get(ctx, "/movie/upcoming", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// PopularMovies returns a page of popular movies
func (s *TMDBService) PopularMovies(ctx context.Context, page int) (*model.TMDBList, error) {
	var list model.TMDBList
	if err := s.get(ctx, "/movie/popular", pageParams(page), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// TopRatedMovies returns a page of top-rated movies
func (s *TMDBService) TopRatedMovies(ctx context.Context, page int) (*model.TMDBList, error) {
	var list model.TMDBList
	if err := s.get(ctx, "/movie/top_rated", pageParams(page), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DiscoverMovies returns movies matching the given genre ids
func (s *TMDBService) DiscoverMovies(ctx context.Context, genreIDs []int, page int) (*model.TMDBList, error) {
	params := pageParams(page)
	if len(genreIDs) > 0 {
		ids := make([]string, len(genreIDs))
		for i, id := range genreIDs {
			ids[i] = strconv.Itoa(id)
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}

	var list model.TMDBList
	if err := s.get(ctx, "/discover/movie", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// MovieDetail returns one movie with credits, reviews, videos, images
// and watch-provider offers appended
func (s *TMDBService) MovieDetail(ctx context.Context, id int) (*model.TMDBMovieDetail, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,reviews,videos,images,watch/providers")

	var detail model.TMDBMovieDetail
	if err := s.get(ctx, "/movie/"+strconv.Itoa(id), params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// MovieCredits returns one movie's credits block
func (s *TMDBService) MovieCredits(ctx context.Context, id int) (*model.TMDBCredits, error) {
	var credits model.TMDBCredits
	if err := s.get(ctx, "/movie/"+strconv.Itoa(id)+"/credits", nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// EnrichMovieCast fills Cast on each summary with the first ten
// credited names. List endpoints return no credits of their own, so the
// names come from one credits fetch per entry, run in parallel. A
// failed fetch leaves that entry's cast empty; the list still renders.
func (s *TMDBService) EnrichMovieCast(ctx context.Context, summaries []model.MovieSummary) {
	var wg sync.WaitGroup
	for i := range summaries {
		wg.Add(1)
		go func(entry *model.MovieSummary) {
			defer wg.Done()
			credits, err := s.MovieCredits(ctx, entry.ID)
			if err != nil {
				return
			}
			names := []string{}
			for j, member := range credits.Cast {
				if j >= listCastLimit {
					break
				}
				names = append(names, member.Name)
			}
			entry.Cast = names
		}(&summaries[i])
	}
	wg.Wait()
}

// ShowDetail returns one TV show with credits, reviews, videos and
// images appended
func (s *TMDBService) ShowDetail(ctx context.Context, id int) (*model.TMDBShowDetail, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,reviews,videos,images")

	var detail model.TMDBShowDetail
	if err := s.get(ctx, "/tv/"+strconv.Itoa(id), params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Person returns one person record
func (s *TMDBService) Person(ctx context.Context, id int) (*model.TMDBPerson, error) {
	var person model.TMDBPerson
	if err := s.get(ctx, "/person/"+strconv.Itoa(id), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// PersonMovieCredits returns a person's movie filmography
func (s *TMDBService) PersonMovieCredits(ctx context.Context, id int) (*model.TMDBPersonCredits, error) {
	var credits model.TMDBPersonCredits
	if err := s.get(ctx, "/person/"+strconv.Itoa(id)+"/movie_credits", nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// PopularPersons returns a page of popular people
func (s *TMDBService) PopularPersons(ctx context.Context, page int) (*model.TMDBList, error) {
	var list model.TMDBList
	if err := s.get(ctx, "/person/popular", pageParams(page), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SearchMulti queries the multi-entity search endpoint
func (s *TMDBService) SearchMulti(ctx context.Context, query string) (*model.TMDBList, error) {
	params := url.Values{}
	params.Set("query", query)

	var list model.TMDBList
	if err := s.get(ctx, "/search/multi", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func pageParams(page int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	return params
}
