package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cinescope-service/internal/auth"
	"cinescope-service/internal/model"
	"cinescope-service/internal/repository"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	documents *repository.DocumentStore
	manager   *auth.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(documents *repository.DocumentStore, manager *auth.Manager) *AuthHandler {
	return &AuthHandler{documents: documents, manager: manager}
}

type credentialsBody struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Register creates an account and returns a session token
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var body credentialsBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid request body",
		})
		return
	}

	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Email == "" || len(body.Password) < 8 {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "email and a password of at least 8 characters are required",
		})
		return
	}
	if body.DisplayName == "" {
		body.DisplayName = body.Email[:strings.Index(body.Email+"@", "@")]
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to create account",
		})
		return
	}

	user, err := h.documents.CreateUser(c.Request.Context(), body.Email, body.DisplayName, hash)
	if err == repository.ErrEmailTaken {
		c.JSON(http.StatusConflict, model.APIResponse{
			Code:  409,
			Error: "email already registered",
		})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("registration failed")
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to create account",
		})
		return
	}

	h.respondWithToken(c, user)
}

// Login verifies credentials and returns a session token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var body credentialsBody
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid request body",
		})
		return
	}

	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	user, err := h.documents.UserByEmail(c.Request.Context(), body.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, body.Password) {
		c.JSON(http.StatusUnauthorized, model.APIResponse{
			Code:  401,
			Error: "invalid email or password",
		})
		return
	}

	h.respondWithToken(c, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, user model.User) {
	token, err := h.manager.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: "failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: gin.H{
			"token": token,
			"user":  user,
		},
	})
}
