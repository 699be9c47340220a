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

// DetailPayload is a movie detail plus its presentation-ready assets:
// resolved image URLs and the trailers the carousel can play. The
// cached view-model keeps relative paths; this wrapper is built fresh
// on every response.
type DetailPayload struct {
	model.MovieDetail
	PosterURL        string          `json:"poster_url"`
	BackdropURLs     []string        `json:"backdrop_urls"`
	PlayableTrailers []model.Trailer `json:"playable_trailers"`
}

func newDetailPayload(detail model.MovieDetail, images *service.ImageResolver) DetailPayload {
	urls := make([]string, 0, len(detail.Backdrops))
	for _, path := range detail.Backdrops {
		urls = append(urls, images.BackdropURL(path))
	}
	return DetailPayload{
		MovieDetail:      detail,
		PosterURL:        images.PosterURL(detail.PosterPath),
		BackdropURLs:     urls,
		PlayableTrailers: service.PlayableTrailers(detail.Trailers),
	}
}

// DetailHandler serves movie detail views
type DetailHandler struct {
	tmdb   *service.TMDBService
	cache  *repository.Cache
	region string
	images *service.ImageResolver
}

// NewDetailHandler creates a new DetailHandler. Streaming offers are
// resolved for the given watch region.
func NewDetailHandler(tmdb *service.TMDBService, cache *repository.Cache, region string, images *service.ImageResolver) *DetailHandler {
	return &DetailHandler{tmdb: tmdb, cache: cache, region: region, images: images}
}

// GetDetail returns one movie with credits, reviews, trailers,
// backdrops and streaming offers
// GET /api/v1/detail/:id
func (h *DetailHandler) GetDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid movie id",
		})
		return
	}

	cacheKey := fmt.Sprintf("catalog:detail:%d", id)
	var cached model.MovieDetail
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, model.APIResponse{
			Code:   200,
			Data:   newDetailPayload(cached, h.images),
			Source: "redis-cache",
		})
		return
	}

	raw, err := h.tmdb.MovieDetail(ctx, id)
	if err != nil {
		c.JSON(http.StatusBadGateway, model.APIResponse{
			Code:  502,
			Error: "Failed to fetch movie details",
		})
		return
	}

	detail := service.NormalizeMovieDetail(raw, h.region)
	h.cache.Set(ctx, cacheKey, detail)

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   newDetailPayload(detail, h.images),
		Source: "fresh",
	})
}

// DeleteDetailCache clears one movie's detail cache
// DELETE /api/v1/detail/:id
func (h *DetailHandler) DeleteDetailCache(c *gin.Context) {
	id := c.Param("id")
	h.cache.Delete(c.Request.Context(), "catalog:detail:"+id)
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: "detail cache cleared for " + id,
	})
}

// DeleteAllDetailCache clears all movie detail cache
// DELETE /api/v1/detail
func (h *DetailHandler) DeleteAllDetailCache(c *gin.Context) {
	deleted, err := h.cache.DeletePattern(c.Request.Context(), "catalog:detail:*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("detail cache cleared (%d keys)", deleted),
	})
}
