package service

import (
	"context"
	"errors"
	"fmt"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login checks the credentials and issues a token for the user.
func (a *Auth) Login(ctx context.Context, username, password string) (model.Session, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown user",
			"username", username)
		return model.Session{}, apiErrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"username", username)
		return model.Session{}, apiErrors.NewErrInvalidCredentials()
	}

	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"username", username,
		"user_id", user.ID)

	return model.Session{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
