package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
	"cinescope-service/internal/service"
)

// HomePayload is the landing surface: trending plus upcoming rows
type HomePayload struct {
	Trending []model.MovieSummary `json:"trending"`
	Upcoming []model.MovieSummary `json:"upcoming"`
}

// HomeHandler serves the landing page rows
type HomeHandler struct {
	tmdb  *service.TMDBService
	cache *repository.Cache
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(tmdb *service.TMDBService, cache *repository.Cache) *HomeHandler {
	return &HomeHandler{tmdb: tmdb, cache: cache}
}

// GetHome returns trending and upcoming movies
// GET /api/v1/home
func (h *HomeHandler) GetHome(c *gin.Context) {
	ctx := c.Request.Context()

	cacheKey := "catalog:home"
	var cached HomePayload
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, model.APIResponse{
			Code:   200,
			Data:   cached,
			Source: "redis-cache",
		})
		return
	}

	// The two rows are independent fetches
	var trending, upcoming *model.TMDBList
	var trendingErr, upcomingErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		trending, trendingErr = h.tmdb.TrendingMovies(ctx)
	}()
	go func() {
		defer wg.Done()
		upcoming, upcomingErr = h.tmdb.UpcomingMovies(ctx)
	}()
	wg.Wait()

	if trendingErr != nil && upcomingErr != nil {
		log.Warn().Err(trendingErr).Msg("home fetch failed")
		c.JSON(http.StatusBadGateway, model.APIResponse{
			Code:  502,
			Error: "Failed to fetch movies",
		})
		return
	}

	payload := HomePayload{
		Trending: service.NormalizeMovieList(trending),
		Upcoming: service.NormalizeMovieList(upcoming),
	}

	h.cache.Set(ctx, cacheKey, payload)

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   payload,
		Source: "fresh",
	})
}

// DeleteHomeCache clears the home cache
// DELETE /api/v1/home
func (h *HomeHandler) DeleteHomeCache(c *gin.Context) {
	h.cache.Delete(context.Background(), "catalog:home")
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: "home cache cleared",
	})
}
