package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cinescope-service/internal/model"
)

// DebounceQuiet is how long input must be stable before a search fires
const DebounceQuiet = 300 * time.Millisecond

// Entity kinds returned by multi search
const (
	mediaTypeMovie  = "movie"
	mediaTypeTV     = "tv"
	mediaTypePerson = "person"
)

// SearchAggregator runs multi-entity searches and partitions the
// results by kind
type SearchAggregator struct {
	tmdb *TMDBService
}

// NewSearchAggregator creates a new SearchAggregator
func NewSearchAggregator(tmdb *TMDBService) *SearchAggregator {
	return &SearchAggregator{tmdb: tmdb}
}

// Search queries the multi-search endpoint and groups the flat result
// list. The query must be non-empty after trimming.
func (a *SearchAggregator) Search(ctx context.Context, query string) (model.SearchGroups, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return EmptyGroups(), fmt.Errorf("empty search query")
	}

	list, err := a.tmdb.SearchMulti(ctx, query)
	if err != nil {
		return EmptyGroups(), err
	}
	return PartitionSearchResults(list), nil
}

// PartitionSearchResults splits a flat multi-search response into
// movie, TV and person groups, each in source order. Entries of any
// other kind are dropped; no consumer renders an "other" bucket.
func PartitionSearchResults(list *model.TMDBList) model.SearchGroups {
	groups := EmptyGroups()
	if list == nil {
		return groups
	}

	for _, item := range list.Results {
		result := model.SearchResultItem{
			ID:        item.ID,
			MediaType: item.MediaType,
			Title:     item.DisplayTitle(),
			Year:      item.ReleaseYear(),
			Rating:    item.VoteAverage,
		}

		switch item.MediaType {
		case mediaTypeMovie:
			result.PosterPath = deref(item.PosterPath)
			groups.Movies = append(groups.Movies, result)
		case mediaTypeTV:
			result.PosterPath = deref(item.PosterPath)
			groups.TVShows = append(groups.TVShows, result)
		case mediaTypePerson:
			result.ProfilePath = deref(item.ProfilePath)
			groups.Actors = append(groups.Actors, result)
		}
	}
	return groups
}

// EmptyGroups returns a SearchGroups with empty, non-nil groups
func EmptyGroups() model.SearchGroups {
	return model.SearchGroups{
		Movies:  []model.SearchResultItem{},
		TVShows: []model.SearchResultItem{},
		Actors:  []model.SearchResultItem{},
	}
}

// SearchFunc performs one search for a debounced query
type SearchFunc func(ctx context.Context, query string) (model.SearchGroups, error)

// ResultFunc receives the outcome of the most recent query
type ResultFunc func(query string, groups model.SearchGroups, err error)

// Debouncer coalesces rapid query updates into one search per quiet
// period and guarantees last-request-wins: a superseded request is
// cancelled, and its response, if it still arrives, never overwrites
// the state of a newer query.
type Debouncer struct {
	quiet    time.Duration
	search   SearchFunc
	onResult ResultFunc

	mu      sync.Mutex
	seq     uint64
	applied uint64
	timer   *time.Timer
	cancel  context.CancelFunc
}

// NewDebouncer creates a Debouncer firing search after quiet, reporting
// outcomes through onResult
func NewDebouncer(quiet time.Duration, search SearchFunc, onResult ResultFunc) *Debouncer {
	return &Debouncer{
		quiet:    quiet,
		search:   search,
		onResult: onResult,
	}
}

// Update records a keystroke. An empty (after trimming) query clears
// the results immediately without a network call.
func (d *Debouncer) Update(query string) {
	query = strings.TrimSpace(query)

	d.mu.Lock()
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if query == "" {
		d.applied = seq
		d.mu.Unlock()
		d.onResult("", EmptyGroups(), nil)
		return
	}
	d.timer = time.AfterFunc(d.quiet, func() { d.fire(seq, query) })
	d.mu.Unlock()
}

// Close cancels any pending or in-flight search
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Debouncer) fire(seq uint64, query string) {
	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	groups, err := d.search(ctx, query)

	d.mu.Lock()
	if seq != d.seq || seq <= d.applied {
		// A newer query superseded this one while it was in flight
		d.mu.Unlock()
		return
	}
	d.applied = seq
	d.mu.Unlock()

	d.onResult(query, groups, err)
}
