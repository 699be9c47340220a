package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cinescope-service/internal/middleware"
	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
	"cinescope-service/internal/service"
)

// recommendationLimit caps the recommendation strip
const recommendationLimit = 6

// ProfileHandler serves the profile document, image uploads and
// genre-based recommendations
type ProfileHandler struct {
	documents *repository.DocumentStore
	objects   *repository.ObjectStore
	tmdb      *service.TMDBService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(documents *repository.DocumentStore, objects *repository.ObjectStore, tmdb *service.TMDBService) *ProfileHandler {
	return &ProfileHandler{documents: documents, objects: objects, tmdb: tmdb}
}

// GetProfile returns the caller's profile document
// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.documents.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to load profile",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: profile,
	})
}

// UpdateProfile merges username, picture and genre preferences
// PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var profile model.Profile
	if err := c.BindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid request body",
		})
		return
	}

	if err := h.documents.UpsertProfile(c.Request.Context(), middleware.UserID(c), profile); err != nil {
		log.Error().Err(err).Msg("profile update failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: "profile updated",
	})
}

// UploadProfileImage stores a profile picture and saves its URL on the
// profile. Rejections happen before anything is written.
// POST /api/v1/profile/image
func (h *ProfileHandler) UploadProfileImage(c *gin.Context) {
	userID := middleware.UserID(c)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "missing image file",
		})
		return
	}
	defer file.Close()

	url, err := h.objects.SaveProfileImage(userID, header.Header.Get("Content-Type"), header.Size, file)
	if err == repository.ErrUploadTooLarge || err == repository.ErrNotAnImage {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: err.Error(),
		})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("image upload failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to store image",
		})
		return
	}

	profile, err := h.documents.GetProfile(c.Request.Context(), userID)
	if err == nil {
		profile.ProfilePicture = url
		if err := h.documents.UpsertProfile(c.Request.Context(), userID, profile); err != nil {
			log.Warn().Err(err).Msg("failed to save picture URL on profile")
		}
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: gin.H{"url": url},
	})
}

// GetRecommendations discovers movies matching the caller's preferred
// genres, capped at six
// GET /api/v1/profile/recommendations
func (h *ProfileHandler) GetRecommendations(c *gin.Context) {
	ctx := c.Request.Context()

	profile, err := h.documents.GetProfile(ctx, middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to load profile",
		})
		return
	}

	genreIDs := service.PreferenceGenreIDs(profile.Preferences)
	if len(genreIDs) == 0 {
		// No preferences selected is a valid empty state
		c.JSON(http.StatusOK, model.APIResponse{
			Code: 200,
			Data: []model.MovieSummary{},
		})
		return
	}

	list, err := h.tmdb.DiscoverMovies(ctx, genreIDs, 1)
	if err != nil {
		c.JSON(http.StatusBadGateway, model.APIResponse{
			Code:  502,
			Error: "Failed to fetch recommendations",
		})
		return
	}

	summaries := service.NormalizeMovieList(list)
	if len(summaries) > recommendationLimit {
		summaries = summaries[:recommendationLimit]
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: summaries,
	})
}
