package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cinescope-service/internal/middleware"
	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
)

// ReviewsHandler serves per-user free-form reviews
type ReviewsHandler struct {
	documents *repository.DocumentStore
}

// NewReviewsHandler creates a new ReviewsHandler
func NewReviewsHandler(documents *repository.DocumentStore) *ReviewsHandler {
	return &ReviewsHandler{documents: documents}
}

// ListReviews returns the caller's reviews, newest first
// GET /api/v1/reviews
func (h *ReviewsHandler) ListReviews(c *gin.Context) {
	reviews, err := h.documents.ListReviews(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("reviews query failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to load reviews",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: reviews,
	})
}

// AddReview stores a review. The author is always the authenticated
// display name, never client-supplied.
// POST /api/v1/reviews
func (h *ReviewsHandler) AddReview(c *gin.Context) {
	var review model.UserReview
	if err := c.BindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid request body",
		})
		return
	}

	review.Content = strings.TrimSpace(review.Content)
	if review.Content == "" {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "review content is required",
		})
		return
	}
	review.Author = middleware.DisplayName(c)

	stored, err := h.documents.AddReview(c.Request.Context(), middleware.UserID(c), review)
	if err != nil {
		log.Error().Err(err).Msg("review insert failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to save review",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: stored,
	})
}
