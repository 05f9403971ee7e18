package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

const (
	minUsernameLength = 3
	minPasswordLength = 3
	// bcrypt ignores input past 72 bytes, so longer passwords are refused.
	maxPasswordBytes = 72
)

type User struct {
	userStore model.UserStore
	blogStore model.BlogStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	blogStore model.BlogStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		blogStore: blogStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// CreateUser validates the registration and stores the user with a hashed password.
func (s *User) CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	if err := validatePassword(params.Password); err != nil {
		return model.User{}, err
	}
	username := strings.TrimSpace(params.Username)
	if err := validateUsername(username); err != nil {
		return model.User{}, err
	}

	existing, err := s.userStore.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("User service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	if existing.ID != uuid.Nil {
		return model.User{}, errUsernameTaken()
	}

	hash, err := s.hasher.Hash(*params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     username,
		Name:         params.Name,
		PasswordHash: hash,
		Blogs:        []uuid.UUID{},
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, errUsernameTaken()
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"username", user.Username,
		"user_id", user.ID)

	return user, nil
}

// ListUsers returns every user with the blogs it owns.
func (s *User) ListUsers(ctx context.Context) ([]model.UserView, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	blogs, err := s.blogStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	byID := make(map[uuid.UUID]model.Blog, len(blogs))
	for _, b := range blogs {
		byID[b.ID] = b
	}

	views := make([]model.UserView, 0, len(users))
	for _, u := range users {
		view := model.UserView{User: u, Blogs: make([]model.Blog, 0, len(u.Blogs))}
		for _, id := range u.Blogs {
			if b, ok := byID[id]; ok {
				view.Blogs = append(view.Blogs, b)
			}
		}
		views = append(views, view)
	}

	return views, nil
}

func validatePassword(password *string) error {
	switch {
	case password == nil:
		return apiErrors.NewErrValidation("password is required")
	case utf8.RuneCountInString(*password) < minPasswordLength:
		return apiErrors.NewErrValidation(fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	case len(*password) > maxPasswordBytes:
		return apiErrors.NewErrValidation(fmt.Sprintf("password must be at most %d bytes long", maxPasswordBytes))
	}
	return nil
}

func validateUsername(username string) error {
	switch {
	case username == "":
		return apiErrors.NewErrValidation("username is required")
	case utf8.RuneCountInString(username) < minUsernameLength:
		return apiErrors.NewErrValidation(fmt.Sprintf("username must be at least %d characters long", minUsernameLength))
	}
	return nil
}

func errUsernameTaken() error {
	return apiErrors.NewErrValidation("expected username to be unique")
}
