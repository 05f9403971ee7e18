package model

import (
	"context"

	"github.com/google/uuid"
)

// BlogStore defines persistence operations for blogs.
type BlogStore interface {
	Create(ctx context.Context, blog Blog) (Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (Blog, error)
	List(ctx context.Context) ([]Blog, error)
	Update(ctx context.Context, blog Blog) (Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Blog represents a stored blog entry owned by a user.
type Blog struct {
	ID     uuid.UUID
	Title  string
	URL    string
	Author string
	Likes  int
	Owner  uuid.UUID
}

// AuthorName implements stats.Entry.
func (b Blog) AuthorName() string { return b.Author }

// LikeCount implements stats.Entry.
func (b Blog) LikeCount() int { return b.Likes }

// CreateBlogParams contains parameters to create a blog.
// A nil Likes defaults to zero.
type CreateBlogParams struct {
	Owner  uuid.UUID
	Title  string
	URL    string
	Author string
	Likes  *int
}

// UpdateBlogParams contains the replacement fields for an existing blog.
// Caller is uuid.Nil for unauthenticated requests.
type UpdateBlogParams struct {
	ID     uuid.UUID
	Caller uuid.UUID
	Title  string
	URL    string
	Author string
	Likes  *int
}
