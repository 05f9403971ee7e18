package context

import (
	"context"

	"github.com/dtroode/bloglist-server/internal/model"
)

type userKey struct{}

// Manager stores the authenticated user in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext attaches user to ctx. A context that already carries a user
// is returned unchanged, so the identity of a request is fixed once set.
//
// Parameters:
//   - ctx: The request context
//   - user: The authenticated user
//
// Returns a context carrying the user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	if _, ok := m.GetUserFromContext(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the user attached to ctx and whether there was one.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}
