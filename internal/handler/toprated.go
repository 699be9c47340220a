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

// TopRatedHandler serves the top-rated ranking
type TopRatedHandler struct {
	tmdb  *service.TMDBService
	cache *repository.Cache
}

// NewTopRatedHandler creates a new TopRatedHandler
func NewTopRatedHandler(tmdb *service.TMDBService, cache *repository.Cache) *TopRatedHandler {
	return &TopRatedHandler{tmdb: tmdb, cache: cache}
}

// GetTopRated returns a page of top-rated movies in rank order
// GET /api/v1/top-rated?page=1
func (h *TopRatedHandler) GetTopRated(c *gin.Context) {
	ctx := c.Request.Context()
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	cacheKey := fmt.Sprintf("catalog:toprated:%d", page)
	var cached []model.MovieSummary
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, model.APIResponse{
			Code:   200,
			Data:   cached,
			Source: "redis-cache",
		})
		return
	}

	list, err := h.tmdb.TopRatedMovies(ctx, page)
	if err != nil {
		c.JSON(http.StatusBadGateway, model.APIResponse{
			Code:  502,
			Error: "Failed to fetch top rated movies",
		})
		return
	}

	summaries := service.NormalizeMovieList(list)
	h.cache.Set(ctx, cacheKey, summaries)

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   summaries,
		Source: "fresh",
	})
}

// DeleteTopRatedCache clears the top-rated cache
// DELETE /api/v1/top-rated
func (h *TopRatedHandler) DeleteTopRatedCache(c *gin.Context) {
	deleted, _ := h.cache.DeletePattern(c.Request.Context(), "catalog:toprated:*")
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("top rated cache cleared (%d keys)", deleted),
	})
}
