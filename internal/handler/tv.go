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

// ShowPayload is a show detail plus its presentation-ready assets
type ShowPayload struct {
	model.ShowDetail
	PosterURL        string          `json:"poster_url"`
	BackdropURLs     []string        `json:"backdrop_urls"`
	PlayableTrailers []model.Trailer `json:"playable_trailers"`
}

func newShowPayload(detail model.ShowDetail, images *service.ImageResolver) ShowPayload {
	urls := make([]string, 0, len(detail.Backdrops))
	for _, path := range detail.Backdrops {
		urls = append(urls, images.BackdropURL(path))
	}
	return ShowPayload{
		ShowDetail:       detail,
		PosterURL:        images.PosterURL(detail.PosterPath),
		BackdropURLs:     urls,
		PlayableTrailers: service.PlayableTrailers(detail.Trailers),
	}
}

// TVHandler serves TV show detail views
type TVHandler struct {
	tmdb   *service.TMDBService
	cache  *repository.Cache
	images *service.ImageResolver
}

// NewTVHandler creates a new TVHandler
func NewTVHandler(tmdb *service.TMDBService, cache *repository.Cache, images *service.ImageResolver) *TVHandler {
	return &TVHandler{tmdb: tmdb, cache: cache, images: images}
}

// GetShow returns one show with seasons, cast and short reviews
// GET /api/v1/tv/:id
func (h *TVHandler) GetShow(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid show id",
		})
		return
	}

	cacheKey := fmt.Sprintf("catalog:tv:%d", id)
	var cached model.ShowDetail
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, model.APIResponse{
			Code:   200,
			Data:   newShowPayload(cached, h.images),
			Source: "redis-cache",
		})
		return
	}

	raw, err := h.tmdb.ShowDetail(ctx, id)
	if err != nil {
		c.JSON(http.StatusBadGateway, model.APIResponse{
			Code:  502,
			Error: "Failed to fetch TV show details",
		})
		return
	}

	detail := service.NormalizeShowDetail(raw)
	h.cache.Set(ctx, cacheKey, detail)

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   newShowPayload(detail, h.images),
		Source: "fresh",
	})
}

// DeleteTVCache clears one show's detail cache
// DELETE /api/v1/tv/:id
func (h *TVHandler) DeleteTVCache(c *gin.Context) {
	id := c.Param("id")
	h.cache.Delete(c.Request.Context(), "catalog:tv:"+id)
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: "tv cache cleared for " + id,
	})
}

// DeleteAllTVCache clears all show detail cache
// DELETE /api/v1/tv
func (h *TVHandler) DeleteAllTVCache(c *gin.Context) {
	deleted, err := h.cache.DeletePattern(c.Request.Context(), "catalog:tv:*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("tv cache cleared (%d keys)", deleted),
	})
}
