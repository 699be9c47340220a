package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
	"cinescope-service/internal/service"
)

// MoviesHandler serves the browsable movie list with client-style
// filtering applied server-side over the fetched page
type MoviesHandler struct {
	tmdb  *service.TMDBService
	cache *repository.Cache
}

// NewMoviesHandler creates a new MoviesHandler
func NewMoviesHandler(tmdb *service.TMDBService, cache *repository.Cache) *MoviesHandler {
	return &MoviesHandler{tmdb: tmdb, cache: cache}
}

// GetMovies returns popular movies, optionally filtered
// GET /api/v1/movies?page=1&genre=Drama&year=2024&actor=All&min_rating=0
func (h *MoviesHandler) GetMovies(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	spec := model.FilterSpec{
		Genre: c.DefaultQuery("genre", model.FilterAll),
		Year:  c.DefaultQuery("year", model.FilterAll),
		Actor: c.DefaultQuery("actor", model.FilterAll),
	}
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > model.MaxRating {
			c.JSON(http.StatusBadRequest, model.APIResponse{
				Code:  400,
				Error: "min_rating must be between 0 and 10",
			})
			return
		}
		spec.MinRating = minRating
	}

	cacheKey := fmt.Sprintf("catalog:movies:%d", page)

	var summaries []model.MovieSummary
	source := "redis-cache"
	if err := h.cache.Get(ctx, cacheKey, &summaries); err != nil {
		list, err := h.tmdb.PopularMovies(ctx, page)
		if err != nil {
			c.JSON(http.StatusBadGateway, model.APIResponse{
				Code:  502,
				Error: "Failed to fetch movies",
			})
			return
		}
		summaries = service.NormalizeMovieList(list)
		// Cast names are fetched per entry so the actor filter can match
		h.tmdb.EnrichMovieCast(ctx, summaries)
		h.cache.Set(ctx, cacheKey, summaries)
		source = "fresh"
	}

	// An empty filtered result is a valid empty state, not an error
	filtered := service.FilterMovies(summaries, spec)

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   filtered,
		Source: source,
	})
}

// DeleteMoviesCache clears all movie list cache
// DELETE /api/v1/movies
func (h *MoviesHandler) DeleteMoviesCache(c *gin.Context) {
	deleted, _ := h.cache.DeletePattern(c.Request.Context(), "catalog:movies:*")
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("movie list cache cleared (%d keys)", deleted),
	})
}
