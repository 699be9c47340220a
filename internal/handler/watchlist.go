package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cinescope-service/internal/middleware"
	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
)

// WatchlistHandler serves the per-user watchlist
type WatchlistHandler struct {
	documents *repository.DocumentStore
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(documents *repository.DocumentStore) *WatchlistHandler {
	return &WatchlistHandler{documents: documents}
}

// ListWatchlist returns the caller's watchlist
// GET /api/v1/watchlist
func (h *WatchlistHandler) ListWatchlist(c *gin.Context) {
	entries, err := h.documents.ListWatchlist(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("watchlist query failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to load watchlist",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: entries,
	})
}

// AddToWatchlist appends a title and returns the stored entry
// POST /api/v1/watchlist
func (h *WatchlistHandler) AddToWatchlist(c *gin.Context) {
	var entry model.WatchlistEntry
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

	stored, err := h.documents.AddWatchlistEntry(c.Request.Context(), middleware.UserID(c), entry)
	if err != nil {
		log.Error().Err(err).Msg("watchlist insert failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to save watchlist entry",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: stored,
	})
}

// RemoveFromWatchlist deletes one entry by id
// DELETE /api/v1/watchlist/:id
func (h *WatchlistHandler) RemoveFromWatchlist(c *gin.Context) {
	err := h.documents.RemoveWatchlistEntry(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, model.APIResponse{
			Code:  404,
			Error: "watchlist entry not found",
		})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("watchlist delete failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to remove watchlist entry",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: "watchlist entry removed",
	})
}
