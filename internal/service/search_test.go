package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinescope-service/internal/model"
)

func TestPartitionSearchResults(t *testing.T) {
	list := &model.TMDBList{Results: []model.TMDBListItem{
		{ID: 1, MediaType: "movie", Title: "Inception", ReleaseDate: "2010-07-15", PosterPath: strPtr("/i.jpg")},
		{ID: 2, MediaType: "person", Name: "Tom Hardy", ProfilePath: strPtr("/t.jpg")},
		{ID: 3, MediaType: "tv", Name: "Peaky Blinders", FirstAirDate: "2013-09-12"},
		{ID: 4, MediaType: "collection", Name: "Inception Collection"},
		{ID: 5, MediaType: "movie", Title: "Interstellar"},
	}}

	groups := PartitionSearchResults(list)

	require.Len(t, groups.Movies, 2)
	assert.Equal(t, "Inception", groups.Movies[0].Title)
	assert.Equal(t, "/i.jpg", groups.Movies[0].PosterPath)
	assert.Equal(t, "Interstellar", groups.Movies[1].Title)

	require.Len(t, groups.TVShows, 1)
	assert.Equal(t, "Peaky Blinders", groups.TVShows[0].Title)
	assert.Equal(t, "2013", groups.TVShows[0].Year)

	require.Len(t, groups.Actors, 1)
	assert.Equal(t, "/t.jpg", groups.Actors[0].ProfilePath)
}

func TestPartitionSearchResultsNil(t *testing.T) {
	groups := PartitionSearchResults(nil)
	assert.NotNil(t, groups.Movies)
	assert.NotNil(t, groups.TVShows)
	assert.NotNil(t, groups.Actors)
}

func TestSearchAggregatorRejectsEmptyQuery(t *testing.T) {
	a := NewSearchAggregator(nil)

	_, err := a.Search(context.Background(), "   ")
	assert.Error(t, err)
}

func TestDebouncerCoalescesRapidUpdates(t *testing.T) {
	var calls int32
	var queries []string
	search := func(ctx context.Context, query string) (model.SearchGroups, error) {
		atomic.AddInt32(&calls, 1)
		queries = append(queries, query)
		return EmptyGroups(), nil
	}

	results := make(chan string, 4)
	d := NewDebouncer(20*time.Millisecond, search, func(query string, groups model.SearchGroups, err error) {
		results <- query
	})
	defer d.Close()

	// Three keystrokes inside one quiet window
	d.Update("i")
	d.Update("in")
	d.Update("inc")

	select {
	case query := <-results:
		assert.Equal(t, "inc", query)
	case <-time.After(time.Second):
		t.Fatal("debounced search never fired")
	}

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Equal(t, []string{"inc"}, queries)
}

func TestDebouncerEmptyQueryClearsImmediately(t *testing.T) {
	var calls int32
	search := func(ctx context.Context, query string) (model.SearchGroups, error) {
		atomic.AddInt32(&calls, 1)
		return EmptyGroups(), nil
	}

	results := make(chan string, 1)
	d := NewDebouncer(20*time.Millisecond, search, func(query string, groups model.SearchGroups, err error) {
		assert.NoError(t, err)
		assert.Empty(t, groups.Movies)
		results <- query
	})
	defer d.Close()

	d.Update("   ")

	// The clear is synchronous, no quiet period and no network call
	select {
	case query := <-results:
		assert.Equal(t, "", query)
	default:
		t.Fatal("empty query was not cleared synchronously")
	}
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestDebouncerLastRequestWins(t *testing.T) {
	started := make(chan string, 2)
	release := make(chan struct{})
	search := func(ctx context.Context, query string) (model.SearchGroups, error) {
		started <- query
		if query == "first" {
			// Simulate a slow response outliving the next keystroke
			select {
			case <-release:
			case <-ctx.Done():
			}
		}
		groups := EmptyGroups()
		groups.Movies = append(groups.Movies, model.SearchResultItem{Title: query})
		return groups, nil
	}

	results := make(chan string, 2)
	d := NewDebouncer(5*time.Millisecond, search, func(query string, groups model.SearchGroups, err error) {
		results <- query
	})
	defer d.Close()

	d.Update("first")
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first search never started")
	}

	d.Update("second")
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("second search never started")
	}
	close(release)

	select {
	case query := <-results:
		assert.Equal(t, "second", query)
	case <-time.After(time.Second):
		t.Fatal("no result arrived")
	}

	// The superseded response never lands
	select {
	case query := <-results:
		t.Fatalf("stale result applied: %q", query)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncerCloseCancelsPending(t *testing.T) {
	var calls int32
	d := NewDebouncer(20*time.Millisecond, func(ctx context.Context, query string) (model.SearchGroups, error) {
		atomic.AddInt32(&calls, 1)
		return EmptyGroups(), nil
	}, func(string, model.SearchGroups, error) {})

	d.Update("doomed")
	d.Close()

	time.Sleep(60 * time.Millisecond)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}
