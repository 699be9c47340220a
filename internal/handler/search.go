package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
	"cinescope-service/internal/service"
)

// SearchHandler serves multi-entity search grouped by kind
type SearchHandler struct {
	aggregator *service.SearchAggregator
	cache      *repository.Cache
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(aggregator *service.SearchAggregator, cache *repository.Cache) *SearchHandler {
	return &SearchHandler{aggregator: aggregator, cache: cache}
}

// Search partitions multi-search results into movies, TV shows and
// actors. Debouncing happens client-side; the endpoint itself answers
// every call it receives.
// GET /api/v1/search?q=inception
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "missing search query parameter q",
		})
		return
	}

	cacheKey := "catalog:search:" + query
	var cached model.SearchGroups
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, model.APIResponse{
			Code:   200,
			Data:   cached,
			Source: "redis-cache",
		})
		return
	}

	groups, err := h.aggregator.Search(ctx, query)
	if err != nil {
		c.JSON(http.StatusBadGateway, model.APIResponse{
			Code:  502,
			Error: "Failed to fetch search results",
		})
		return
	}

	h.cache.Set(ctx, cacheKey, groups)

	log.Info().
		Str("query", query).
		Int("movies", len(groups.Movies)).
		Int("tv", len(groups.TVShows)).
		Int("actors", len(groups.Actors)).
		Msg("search complete")

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   groups,
		Source: "fresh",
	})
}

// DeleteSearchCache clears all search cache
// DELETE /api/v1/search
func (h *SearchHandler) DeleteSearchCache(c *gin.Context) {
	deleted, _ := h.cache.DeletePattern(c.Request.Context(), "catalog:search:*")
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("search cache cleared (%d keys)", deleted),
	})
}
