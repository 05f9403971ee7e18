package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
	"github.com/dtroode/bloglist-server/internal/stats"
)

// BlogOptions tunes the blog service.
type BlogOptions struct {
	// EnforceUpdateOwnership rejects updates from anyone but the blog owner.
	EnforceUpdateOwnership bool
	// ConsistencyRetries is the number of extra attempts to sync the owner's blog list.
	ConsistencyRetries uint64
	// RetryInterval is the initial delay between those attempts.
	RetryInterval time.Duration
}

// Blog keeps blogs and their owners' blog lists in step.
type Blog struct {
	blogStore model.BlogStore
	userStore model.UserStore
	opts      BlogOptions
	logger    *logger.Logger
}

func NewBlog(
	blogStore model.BlogStore,
	userStore model.UserStore,
	opts BlogOptions,
	logger *logger.Logger,
) *Blog {
	return &Blog{
		blogStore: blogStore,
		userStore: userStore,
		opts:      opts,
		logger:    logger,
	}
}

// CreateBlog stores a blog for its owner and then records it in the owner's blog list.
func (s *Blog) CreateBlog(ctx context.Context, params model.CreateBlogParams) (model.Blog, error) {
	if params.Owner == uuid.Nil {
		return model.Blog{}, apiErrors.NewErrTokenRequired()
	}

	title, url, likes, err := validateBlog(params.Title, params.URL, params.Likes, 0)
	if err != nil {
		return model.Blog{}, err
	}

	blog, err := s.blogStore.Create(ctx, model.Blog{
		ID:     uuid.New(),
		Title:  title,
		URL:    url,
		Author: params.Author,
		Likes:  likes,
		Owner:  params.Owner,
	})
	if err != nil {
		s.logger.Error("Blog service: failed to create blog",
			"owner_id", params.Owner,
			"error", err.Error())
		return model.Blog{}, fmt.Errorf("failed to create blog: %w", err)
	}

	if err := s.syncOwner(ctx, blog.ID, blog.Owner, s.userStore.AddBlog); err != nil {
		return model.Blog{}, err
	}

	s.logger.Info("Blog service: blog created",
		"blog_id", blog.ID,
		"owner_id", blog.Owner)

	return blog, nil
}

// DeleteBlog removes a blog owned by userID and drops it from the owner's blog list.
func (s *Blog) DeleteBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	if userID == uuid.Nil {
		return apiErrors.NewErrTokenRequired()
	}

	blog, err := s.blogStore.GetByID(ctx, blogID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrBlogNotFound(blogID)
	}
	if err != nil {
		return fmt.Errorf("failed to get blog: %w", err)
	}

	if blog.Owner != userID {
		s.logger.Info("Blog service: delete by non-owner",
			"blog_id", blogID,
			"user_id", userID)
		return apiErrors.NewErrNotOwner()
	}

	err = s.blogStore.Delete(ctx, blogID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrBlogNotFound(blogID)
	}
	if err != nil {
		s.logger.Error("Blog service: failed to delete blog",
			"blog_id", blogID,
			"error", err.Error())
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	if err := s.syncOwner(ctx, blogID, blog.Owner, s.userStore.RemoveBlog); err != nil {
		return err
	}

	s.logger.Info("Blog service: blog deleted",
		"blog_id", blogID,
		"owner_id", blog.Owner)

	return nil
}

// UpdateBlog replaces the editable fields of a blog and returns it with its owner.
func (s *Blog) UpdateBlog(ctx context.Context, params model.UpdateBlogParams) (model.BlogView, error) {
	blog, err := s.blogStore.GetByID(ctx, params.ID)
	if errors.Is(err, model.ErrNotFound) {
		return model.BlogView{}, apiErrors.NewErrBlogNotFound(params.ID)
	}
	if err != nil {
		return model.BlogView{}, fmt.Errorf("failed to get blog: %w", err)
	}

	if s.opts.EnforceUpdateOwnership {
		if params.Caller == uuid.Nil {
			return model.BlogView{}, apiErrors.NewErrTokenRequired()
		}
		if params.Caller != blog.Owner {
			return model.BlogView{}, apiErrors.NewErrNotOwner()
		}
	}

	title, url, likes, err := validateBlog(params.Title, params.URL, params.Likes, blog.Likes)
	if err != nil {
		return model.BlogView{}, err
	}

	blog.Title = title
	blog.URL = url
	blog.Author = params.Author
	blog.Likes = likes

	updated, err := s.blogStore.Update(ctx, blog)
	if errors.Is(err, model.ErrNotFound) {
		return model.BlogView{}, apiErrors.NewErrBlogNotFound(params.ID)
	}
	if err != nil {
		s.logger.Error("Blog service: failed to update blog",
			"blog_id", params.ID,
			"error", err.Error())
		return model.BlogView{}, fmt.Errorf("failed to update blog: %w", err)
	}

	return s.withOwner(ctx, updated)
}

// GetBlog returns a blog with its owner.
func (s *Blog) GetBlog(ctx context.Context, id uuid.UUID) (model.BlogView, error) {
	blog, err := s.blogStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.BlogView{}, apiErrors.NewErrBlogNotFound(id)
	}
	if err != nil {
		return model.BlogView{}, fmt.Errorf("failed to get blog: %w", err)
	}

	return s.withOwner(ctx, blog)
}

// withOwner looks up the blog's owner. An owner that no longer exists leaves Owner nil.
func (s *Blog) withOwner(ctx context.Context, blog model.Blog) (model.BlogView, error) {
	view := model.BlogView{Blog: blog}
	owner, err := s.userStore.GetByID(ctx, blog.Owner)
	switch {
	case err == nil:
		view.Owner = &owner
	case !errors.Is(err, model.ErrNotFound):
		return model.BlogView{}, fmt.Errorf("failed to get blog owner: %w", err)
	}

	return view, nil
}

// ListBlogs returns all blogs with their owners.
func (s *Blog) ListBlogs(ctx context.Context) ([]model.BlogView, error) {
	blogs, err := s.blogStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	owners := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		owners[u.ID] = u
	}

	views := make([]model.BlogView, 0, len(blogs))
	for _, b := range blogs {
		view := model.BlogView{Blog: b}
		if owner, ok := owners[b.Owner]; ok {
			view.Owner = &owner
		}
		views = append(views, view)
	}

	return views, nil
}

// Stats aggregates likes and authors over all blogs.
func (s *Blog) Stats(ctx context.Context) (model.BlogStats, error) {
	blogs, err := s.blogStore.List(ctx)
	if err != nil {
		return model.BlogStats{}, fmt.Errorf("failed to list blogs: %w", err)
	}

	result := model.BlogStats{TotalLikes: stats.TotalLikes(blogs)}
	if favorite, ok := stats.FavoriteBlog(blogs); ok {
		result.FavoriteBlog = &favorite
	}
	if most, ok := stats.MostBlogs(blogs); ok {
		result.MostBlogs = &most
	}
	if most, ok := stats.MostLikes(blogs); ok {
		result.MostLikes = &most
	}

	return result, nil
}

// syncOwner applies op to the owner's blog list, retrying transient failures.
// A failure that survives the retries leaves the blog and its owner out of step
// and is reported as a consistency error.
func (s *Blog) syncOwner(
	ctx context.Context,
	blogID, ownerID uuid.UUID,
	op func(ctx context.Context, userID, blogID uuid.UUID) error,
) error {
	expBackoff := backoff.NewExponentialBackOff()
	if s.opts.RetryInterval > 0 {
		expBackoff.InitialInterval = s.opts.RetryInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, s.opts.ConsistencyRetries), ctx)

	err := backoff.Retry(func() error {
		err := op(ctx, ownerID, blogID)
		if errors.Is(err, model.ErrNotFound) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
	if err == nil {
		return nil
	}

	s.logger.Error("Blog service: integrity violation, owner blog list out of sync",
		"blog_id", blogID,
		"owner_id", ownerID,
		"error", err.Error())

	return apiErrors.NewErrConsistency(blogID, ownerID, err)
}

func validateBlog(title, url string, likes *int, fallback int) (string, string, int, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" || url == "" {
		return "", "", 0, apiErrors.NewErrValidation("title and url are required")
	}

	n := fallback
	if likes != nil {
		n = *likes
	}
	if n < 0 {
		return "", "", 0, apiErrors.NewErrValidation("likes must be a non-negative number")
	}

	return title, url, n, nil
}
