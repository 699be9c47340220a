package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
	"cinescope-service/internal/service"
)

// ActorPayload is an actor detail merged with the caller's local
// favorites state and the resolved headshot URL at render time
type ActorPayload struct {
	Actor      model.ActorDetail `json:"actor"`
	IsFavorite bool              `json:"is_favorite"`
	ProfileURL string            `json:"profile_url"`
}

// ActorHandler serves person detail and popular-people views
type ActorHandler struct {
	tmdb      *service.TMDBService
	cache     *repository.Cache
	favorites *repository.FavoritesStore
	images    *service.ImageResolver
}

// NewActorHandler creates a new ActorHandler
func NewActorHandler(tmdb *service.TMDBService, cache *repository.Cache, favorites *repository.FavoritesStore, images *service.ImageResolver) *ActorHandler {
	return &ActorHandler{tmdb: tmdb, cache: cache, favorites: favorites, images: images}
}

// GetActor returns one person with their first ten movie credits
// GET /api/v1/actor/:id
func (h *ActorHandler) GetActor(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid actor id",
		})
		return
	}

	cacheKey := fmt.Sprintf("catalog:actor:%d", id)
	var detail model.ActorDetail
	source := "redis-cache"
	if err := h.cache.Get(ctx, cacheKey, &detail); err != nil {
		// The person record and filmography are separate endpoints
		var person *model.TMDBPerson
		var credits *model.TMDBPersonCredits
		var personErr, creditsErr error

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			person, personErr = h.tmdb.Person(ctx, id)
		}()
		go func() {
			defer wg.Done()
			credits, creditsErr = h.tmdb.PersonMovieCredits(ctx, id)
		}()
		wg.Wait()

		if personErr != nil {
			c.JSON(http.StatusBadGateway, model.APIResponse{
				Code:  502,
				Error: "Failed to fetch actor details",
			})
			return
		}
		if creditsErr != nil {
			// Filmography degrades to empty rather than failing the view
			credits = nil
		}

		detail = service.NormalizeActorDetail(person, credits)
		h.cache.Set(ctx, cacheKey, detail)
		source = "fresh"
	}

	payload := ActorPayload{
		Actor:      detail,
		IsFavorite: h.favorites.IsFavorite(ctx, detail.ID),
		ProfileURL: h.images.ProfileURL(detail.ProfilePath),
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   payload,
		Source: source,
	})
}

// GetPopularActors returns a page of popular people for the actors
// surface and the filter dropdown
// GET /api/v1/actors?page=1
func (h *ActorHandler) GetPopularActors(c *gin.Context) {
	ctx := c.Request.Context()
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	cacheKey := fmt.Sprintf("catalog:actors:%d", page)
	var cached []model.SearchResultItem
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, model.APIResponse{
			Code:   200,
			Data:   cached,
			Source: "redis-cache",
		})
		return
	}

	list, err := h.tmdb.PopularPersons(ctx, page)
	if err != nil {
		c.JSON(http.StatusBadGateway, model.APIResponse{
			Code:  502,
			Error: "Failed to fetch actors",
		})
		return
	}

	actors := make([]model.SearchResultItem, 0, len(list.Results))
	for _, item := range list.Results {
		actors = append(actors, model.SearchResultItem{
			ID:          item.ID,
			MediaType:   "person",
			Title:       item.Name,
			ProfilePath: derefPath(item.ProfilePath),
		})
	}
	h.cache.Set(ctx, cacheKey, actors)

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   actors,
		Source: "fresh",
	})
}

// DeleteActorCache clears all person cache
// DELETE /api/v1/actor
func (h *ActorHandler) DeleteActorCache(c *gin.Context) {
	deleted, _ := h.cache.DeletePattern(c.Request.Context(), "catalog:actor*")
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("actor cache cleared (%d keys)", deleted),
	})
}

func derefPath(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
