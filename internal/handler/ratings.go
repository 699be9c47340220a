package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cinescope-service/internal/middleware"
	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
)

// RatingsHandler serves per-user star ratings
type RatingsHandler struct {
	documents *repository.DocumentStore
}

// NewRatingsHandler creates a new RatingsHandler
func NewRatingsHandler(documents *repository.DocumentStore) *RatingsHandler {
	return &RatingsHandler{documents: documents}
}

// ListRatings returns the caller's ratings
// GET /api/v1/ratings
func (h *RatingsHandler) ListRatings(c *gin.Context) {
	entries, err := h.documents.ListRatings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("ratings query failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to load ratings",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: entries,
	})
}

// UpsertRating stores a star rating for one title, overwriting any
// previous rating for the same title
// PUT /api/v1/ratings
func (h *RatingsHandler) UpsertRating(c *gin.Context) {
	var entry model.RatingEntry
	if err := c.BindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid request body",
		})
		return
	}
	if entry.MovieID == 0 || entry.Title == "" {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "movie id and title are required",
		})
		return
	}
	if entry.Rating < 0 || entry.Rating > model.UserRatingMax {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: fmt.Sprintf("rating must be between 0 and %g", model.UserRatingMax),
		})
		return
	}

	if err := h.documents.UpsertRating(c.Request.Context(), middleware.UserID(c), entry); err != nil {
		log.Error().Err(err).Msg("rating upsert failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to save rating",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: "rating saved",
	})
}
