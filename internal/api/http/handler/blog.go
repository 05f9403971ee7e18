package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

// BlogService defines blog operations.
type BlogService interface {
	CreateBlog(ctx context.Context, params model.CreateBlogParams) (model.Blog, error)
	UpdateBlog(ctx context.Context, params model.UpdateBlogParams) (model.BlogView, error)
	DeleteBlog(ctx context.Context, userID, blogID uuid.UUID) error
	GetBlog(ctx context.Context, id uuid.UUID) (model.BlogView, error)
	ListBlogs(ctx context.Context) ([]model.BlogView, error)
	Stats(ctx context.Context) (model.BlogStats, error)
}

// Blog handles HTTP endpoints for blogs.
type Blog struct {
	blogService    BlogService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewBlog creates a new Blog handler.
func NewBlog(blogService BlogService, contextManager model.ContextManager, logger *logger.Logger) *Blog {
	return &Blog{
		blogService:    blogService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// caller returns the authenticated user, or nil for anonymous requests.
func (h *Blog) caller(c *gin.Context) *model.User {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		return nil
	}
	return &user
}

func callerID(u *model.User) uuid.UUID {
	if u == nil {
		return uuid.Nil
	}
	return u.ID
}

// List returns all blogs with their owners.
func (h *Blog) List(c *gin.Context) {
	views, err := h.blogService.ListBlogs(c.Request.Context())
	if err != nil {
		h.logger.Error("Blog handler: list blogs failed",
			"error", err.Error())
		respondError(c, err)
		return
	}

	resp := make([]blogResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, newBlogResponse(v.Blog, v.Owner))
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns a single blog.
func (h *Blog) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.blogService.GetBlog(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBlogResponse(view.Blog, view.Owner))
}

// Create stores a blog owned by the authenticated user.
func (h *Blog) Create(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody(err))
		return
	}

	user := h.caller(c)
	blog, err := h.blogService.CreateBlog(c.Request.Context(), model.CreateBlogParams{
		Owner:  callerID(user),
		Title:  req.Title,
		URL:    req.URL,
		Author: req.Author,
		Likes:  req.Likes,
	})
	if err != nil {
		h.logger.Info("Blog handler: create blog failed",
			"error", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBlogResponse(blog, user))
}

// Update replaces the fields of a blog.
func (h *Blog) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody(err))
		return
	}

	view, err := h.blogService.UpdateBlog(c.Request.Context(), model.UpdateBlogParams{
		ID:     id,
		Caller: callerID(h.caller(c)),
		Title:  req.Title,
		URL:    req.URL,
		Author: req.Author,
		Likes:  req.Likes,
	})
	if err != nil {
		h.logger.Info("Blog handler: update blog failed",
			"blog_id", id,
			"error", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBlogResponse(view.Blog, view.Owner))
}

// Delete removes a blog owned by the authenticated user.
func (h *Blog) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.blogService.DeleteBlog(c.Request.Context(), callerID(h.caller(c)), id); err != nil {
		h.logger.Info("Blog handler: delete blog failed",
			"blog_id", id,
			"error", err.Error())
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats returns aggregate statistics over all blogs.
func (h *Blog) Stats(c *gin.Context) {
	s, err := h.blogService.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("Blog handler: stats failed",
			"error", err.Error())
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatsResponse(s))
}
