package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

// UserService defines user registration and listing.
type UserService interface {
	CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error)
	ListUsers(ctx context.Context) ([]model.UserView, error)
}

// User handles HTTP endpoints for users.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Create registers a new user.
func (h *User) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody(err))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), model.CreateUserParams{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Info("User handler: create user failed",
			"username", req.Username,
			"error", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(model.UserView{User: user}))
}

// List returns all users with their blogs.
func (h *User) List(c *gin.Context) {
	views, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("User handler: list users failed",
			"error", err.Error())
		respondError(c, err)
		return
	}

	resp := make([]userResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, newUserResponse(v))
	}
	c.JSON(http.StatusOK, resp)
}
