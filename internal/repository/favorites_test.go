package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinescope-service/internal/model"
)

// memBlobStore is an in-memory BlobStore for exercising the favorites
// logic without Redis or a filesystem
type memBlobStore struct {
	mu         sync.Mutex
	data       map[string][]byte
	failWrites bool
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{data: make(map[string][]byte)}
}

func (s *memBlobStore) Read(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[name]
	if !ok {
		return nil, ErrBlobNotFound
	}
	return data, nil
}

func (s *memBlobStore) Write(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errors.New("disk full")
	}
	s.data[name] = data
	return nil
}

func TestFavoritesListMissingBlob(t *testing.T) {
	store := NewFavoritesStore(newMemBlobStore())

	favorites := store.List(context.Background())
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestFavoritesListCorruptBlob(t *testing.T) {
	blob := newMemBlobStore()
	blob.data["favoriteActors"] = []byte("{not json")
	store := NewFavoritesStore(blob)
	ctx := context.Background()

	assert.Empty(t, store.List(ctx))

	// The set is still usable after a corrupt read
	nowFavorite, err := store.Toggle(ctx, model.FavoriteActor{ID: 1, Name: "X"})
	require.NoError(t, err)
	assert.True(t, nowFavorite)
	assert.Len(t, store.List(ctx), 1)
}

func TestFavoritesToggleTwiceRestoresSet(t *testing.T) {
	store := NewFavoritesStore(newMemBlobStore())
	ctx := context.Background()

	_, err := store.Toggle(ctx, model.FavoriteActor{ID: 7, Name: "X"})
	require.NoError(t, err)
	before := store.List(ctx)

	nowFavorite, err := store.Toggle(ctx, model.FavoriteActor{ID: 9, Name: "Y"})
	require.NoError(t, err)
	assert.True(t, nowFavorite)

	nowFavorite, err = store.Toggle(ctx, model.FavoriteActor{ID: 9, Name: "Y"})
	require.NoError(t, err)
	assert.False(t, nowFavorite)

	assert.Equal(t, before, store.List(ctx))
}

func TestFavoritesToggleSequence(t *testing.T) {
	store := NewFavoritesStore(newMemBlobStore())
	ctx := context.Background()

	_, err := store.Toggle(ctx, model.FavoriteActor{ID: 7, Name: "X"})
	require.NoError(t, err)
	_, err = store.Toggle(ctx, model.FavoriteActor{ID: 9, Name: "Y"})
	require.NoError(t, err)
	_, err = store.Toggle(ctx, model.FavoriteActor{ID: 7, Name: "X"})
	require.NoError(t, err)

	favorites := store.List(ctx)
	require.Len(t, favorites, 1)
	assert.Equal(t, 9, favorites[0].ID)
	assert.Equal(t, "Y", favorites[0].Name)
}

func TestFavoritesInsertionOrder(t *testing.T) {
	store := NewFavoritesStore(newMemBlobStore())
	ctx := context.Background()

	for _, actor := range []model.FavoriteActor{
		{ID: 3, Name: "C"},
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	} {
		_, err := store.Toggle(ctx, actor)
		require.NoError(t, err)
	}

	favorites := store.List(ctx)
	require.Len(t, favorites, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{favorites[0].ID, favorites[1].ID, favorites[2].ID})
}

func TestFavoritesIsFavorite(t *testing.T) {
	store := NewFavoritesStore(newMemBlobStore())
	ctx := context.Background()

	_, err := store.Toggle(ctx, model.FavoriteActor{ID: 42, Name: "X"})
	require.NoError(t, err)

	assert.True(t, store.IsFavorite(ctx, 42))
	assert.False(t, store.IsFavorite(ctx, 43))
}

func TestFavoritesToggleKeepsOnlyPersistedFields(t *testing.T) {
	blob := newMemBlobStore()
	store := NewFavoritesStore(blob)
	ctx := context.Background()

	_, err := store.Toggle(ctx, model.FavoriteActor{ID: 1, Name: "X", ProfilePath: "/x.jpg"})
	require.NoError(t, err)

	favorites := store.List(ctx)
	require.Len(t, favorites, 1)
	assert.Equal(t, model.FavoriteActor{ID: 1, Name: "X", ProfilePath: "/x.jpg"}, favorites[0])
}

func TestFavoritesToggleWriteFailure(t *testing.T) {
	blob := newMemBlobStore()
	store := NewFavoritesStore(blob)
	ctx := context.Background()

	blob.failWrites = true
	_, err := store.Toggle(ctx, model.FavoriteActor{ID: 5, Name: "X"})
	assert.Error(t, err)

	// The failed toggle is lost; the set reads back unchanged
	blob.failWrites = false
	assert.Empty(t, store.List(ctx))
}

func TestFavoritesToggleCancelledContext(t *testing.T) {
	store := NewFavoritesStore(newMemBlobStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Hold the semaphore so the toggle has to wait on the context
	<-store.mu
	defer func() { store.mu <- struct{}{} }()

	_, err := store.Toggle(ctx, model.FavoriteActor{ID: 1, Name: "X"})
	assert.ErrorIs(t, err, context.Canceled)
}
