package repository

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"cinescope-service/internal/model"
)

// favoritesBlob is the single blob name the favorites set lives under
const favoritesBlob = "favoriteActors"

// FavoritesStore maintains the durable set of favorite actors over an
// injected BlobStore. Every mutation is a read-modify-write of the
// whole set, so toggles from concurrent callers serialize through the
// store's mutex-guarded accessor; cross-device conflicts stay
// last-writer-wins, which is what the storage medium gives us.
type FavoritesStore struct {
	blob BlobStore
	mu   chan struct{} // buffered-1 semaphore, also usable with ctx
}

// NewFavoritesStore creates a FavoritesStore over the given blob store
func NewFavoritesStore(blob BlobStore) *FavoritesStore {
	mu := make(chan struct{}, 1)
	mu <- struct{}{}
	return &FavoritesStore{blob: blob, mu: mu}
}

// List returns the current favorites in insertion order. A missing or
// corrupt blob reads as an empty set, never an error.
func (s *FavoritesStore) List(ctx context.Context) []model.FavoriteActor {
	data, err := s.blob.Read(ctx, favoritesBlob)
	if err != nil {
		if err != ErrBlobNotFound {
			log.Warn().Err(err).Msg("favorites read failed, treating as empty")
		}
		return []model.FavoriteActor{}
	}

	var favorites []model.FavoriteActor
	if err := json.Unmarshal(data, &favorites); err != nil {
		log.Warn().Err(err).Msg("favorites blob corrupt, treating as empty")
		return []model.FavoriteActor{}
	}
	if favorites == nil {
		favorites = []model.FavoriteActor{}
	}
	return favorites
}

// IsFavorite reports whether an actor with the given id is in the set
func (s *FavoritesStore) IsFavorite(ctx context.Context, actorID int) bool {
	for _, favorite := range s.List(ctx) {
		if favorite.ID == actorID {
			return true
		}
	}
	return false
}

// Toggle flips the actor's membership and persists the whole set,
// returning the new membership state. Only id, name and profile path
// are kept. A failed persist loses the mutation; it is logged and
// returned so callers can surface it.
func (s *FavoritesStore) Toggle(ctx context.Context, actor model.FavoriteActor) (bool, error) {
	select {
	case <-s.mu:
	case <-ctx.Done():
		return false, ctx.Err()
	}
	defer func() { s.mu <- struct{}{} }()

	favorites := s.List(ctx)

	updated := make([]model.FavoriteActor, 0, len(favorites)+1)
	removed := false
	for _, favorite := range favorites {
		if favorite.ID == actor.ID {
			removed = true
			continue
		}
		updated = append(updated, favorite)
	}

	nowFavorite := !removed
	if nowFavorite {
		updated = append(updated, model.FavoriteActor{
			ID:          actor.ID,
			Name:        actor.Name,
			ProfilePath: actor.ProfilePath,
		})
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return !nowFavorite, err
	}
	if err := s.blob.Write(ctx, favoritesBlob, data); err != nil {
		log.Error().Err(err).Int("actor_id", actor.ID).Msg("favorites write failed, toggle lost")
		return !nowFavorite, err
	}

	return nowFavorite, nil
}
