package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
)

// FavoritesHandler serves the device-local favorite actors set
type FavoritesHandler struct {
	favorites *repository.FavoritesStore
}

// NewFavoritesHandler creates a new FavoritesHandler
func NewFavoritesHandler(favorites *repository.FavoritesStore) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// ListFavorites returns the favorites set in insertion order
// GET /api/v1/favorites
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: h.favorites.List(c.Request.Context()),
	})
}

// CheckFavorite reports one actor's membership
// GET /api/v1/favorites/:id
func (h *FavoritesHandler) CheckFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid actor id",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: gin.H{"is_favorite": h.favorites.IsFavorite(c.Request.Context(), id)},
	})
}

// ToggleFavorite flips an actor's membership and returns the new state
// POST /api/v1/favorites
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	var actor model.FavoriteActor
	if err := c.BindJSON(&actor); err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid request body",
		})
		return
	}
	if actor.ID == 0 || actor.Name == "" {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "actor id and name are required",
		})
		return
	}

	nowFavorite, err := h.favorites.Toggle(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to persist favorites",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: gin.H{"is_favorite": nowFavorite},
	})
}
