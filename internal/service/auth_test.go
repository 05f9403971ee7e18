package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	servermocks "github.com/dtroode/bloglist-server/internal/mocks"
	"github.com/dtroode/bloglist-server/internal/model"
	"github.com/dtroode/bloglist-server/internal/testutil"
)

func newTestAuth(t *testing.T) (*Auth, *servermocks.UserStore, *servermocks.PasswordHasher, *servermocks.TokenManager) {
	t.Helper()

	userStore := servermocks.NewUserStore(t)
	hasher := servermocks.NewPasswordHasher(t)
	manager := servermocks.NewTokenManager(t)
	log := testutil.MakeNoopLogger()

	tokenService := NewTokenService(manager, userStore, log)
	return NewAuth(userStore, hasher, tokenService, log), userStore, hasher, manager
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Username: "root", Name: "Superuser", PasswordHash: "hash"}

	a, userStore, hasher, manager := newTestAuth(t)
	userStore.On("GetByUsername", ctx, "root").Return(user, nil).Once()
	hasher.On("Verify", "sekret", "hash").Return(true).Once()
	manager.On("GenerateAccessToken", user.ID, "root").Return("signed", nil).Once()

	session, err := a.Login(ctx, "root", "sekret")
	require.NoError(t, err)
	assert.Equal(t, model.Session{Token: "signed", Username: "root", Name: "Superuser"}, session)
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()

	a, userStore, _, _ := newTestAuth(t)
	userStore.On("GetByUsername", ctx, "ghost").Return(model.User{}, model.ErrNotFound).Once()

	_, err := a.Login(ctx, "ghost", "sekret")
	require.Error(t, err)
	assert.True(t, apiErrors.IsReason(err, apiErrors.ReasonInvalidCredentials))
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Username: "root", PasswordHash: "hash"}

	a, userStore, hasher, _ := newTestAuth(t)
	userStore.On("GetByUsername", ctx, "root").Return(user, nil).Once()
	hasher.On("Verify", "wrong", "hash").Return(false).Once()

	_, err := a.Login(ctx, "root", "wrong")
	require.Error(t, err)

	apiErr, ok := apiErrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "invalid username or password", apiErr.Message)
	assert.Equal(t, 401, apiErr.HTTPCode)
}

func TestAuth_Login_StoreError(t *testing.T) {
	ctx := context.Background()

	a, userStore, _, _ := newTestAuth(t)
	userStore.On("GetByUsername", ctx, "root").Return(model.User{}, assert.AnError).Once()

	_, err := a.Login(ctx, "root", "sekret")
	require.ErrorIs(t, err, assert.AnError)
}

func TestAuth_Login_TokenError(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Username: "root", PasswordHash: "hash"}

	a, userStore, hasher, manager := newTestAuth(t)
	userStore.On("GetByUsername", ctx, "root").Return(user, nil).Once()
	hasher.On("Verify", "sekret", "hash").Return(true).Once()
	manager.On("GenerateAccessToken", user.ID, "root").Return("", assert.AnError).Once()

	_, err := a.Login(ctx, "root", "sekret")
	require.ErrorIs(t, err, assert.AnError)
}
