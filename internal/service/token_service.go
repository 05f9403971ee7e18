package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

// TokenService issues access tokens and resolves presented tokens to users.
// It composes the TokenManager and UserStore.
type TokenService struct {
	manager   model.TokenManager
	userStore model.UserStore
	logger    *logger.Logger
}

func NewTokenService(manager model.TokenManager, userStore model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, userStore: userStore, logger: logger}
}

// Issue signs a token for user.
func (s *TokenService) Issue(_ context.Context, user model.User) (string, error) {
	token, err := s.manager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return token, nil
}

// GetUserID verifies token and returns the user id it carries.
func (s *TokenService) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.manager.ParseAccessToken(token)
	switch {
	case err == nil:
		return userID, nil
	case errors.Is(err, model.ErrMissingIdentity):
		return uuid.Nil, apiErrors.NewErrMissingIdentity(err)
	default:
		return uuid.Nil, apiErrors.NewErrInvalidToken(err)
	}
}

// ResolveUser verifies token and loads the user it was issued to. A valid
// token for a user that no longer exists is rejected.
func (s *TokenService) ResolveUser(ctx context.Context, token string) (model.User, error) {
	userID, err := s.GetUserID(ctx, token)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Token service: token for unknown user",
			"user_id", userID)
		return model.User{}, apiErrors.NewErrUnknownIdentity(userID)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
