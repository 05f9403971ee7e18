package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

// AuthService defines the login operation.
type AuthService interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges a username and password for a bearer token.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody(err))
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"username", req.Username)

	session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:    session.Token,
		Username: session.Username,
		Name:     session.Name,
	})
}
