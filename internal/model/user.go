package model

import (
	"context"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	// AddBlog appends blogID to the user's blog list unless it is already there.
	AddBlog(ctx context.Context, userID, blogID uuid.UUID) error
	// RemoveBlog drops blogID from the user's blog list.
	RemoveBlog(ctx context.Context, userID, blogID uuid.UUID) error
}

// User represents a stored account that can authenticate and own blogs.
type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	PasswordHash string
	Blogs        []uuid.UUID
}

// CreateUserParams contains parameters to register a user.
// Password is a pointer so that an absent password can be told apart from an empty one.
type CreateUserParams struct {
	Username string
	Name     string
	Password *string
}

// Session is the result of a successful login.
type Session struct {
	Token    string
	Username string
	Name     string
}
