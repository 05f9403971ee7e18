package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

const bearerPrefix = "Bearer "

// IdentityResolver resolves a bearer token to the user it was issued to.
type IdentityResolver interface {
	ResolveUser(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the request context.
// Requests without an Authorization header pass through unauthenticated.
type Authenticate struct {
	resolver       IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver IdentityResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handle is the gin handler for the middleware.
func (m *Authenticate) Handle(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Next()
		return
	}

	user, err := m.authenticateUser(c.Request.Context(), header)
	if err != nil {
		m.abort(c, err)
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserToContext(c.Request.Context(), user))
	c.Next()
}

func (m *Authenticate) authenticateUser(ctx context.Context, header string) (model.User, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return model.User{}, apiErrors.NewErrInvalidToken(nil)
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return model.User{}, apiErrors.NewErrInvalidToken(nil)
	}

	return m.resolver.ResolveUser(ctx, token)
}

func (m *Authenticate) abort(c *gin.Context, err error) {
	if apiErr, ok := apiErrors.As(err); ok && apiErr.Kind == apiErrors.KindAuth {
		m.logger.Debug("Authenticate middleware: rejected token",
			"reason", string(apiErr.Reason),
			"path", c.Request.URL.Path)
		c.AbortWithStatusJSON(apiErr.HTTPCode, gin.H{"error": apiErr.Message})
		return
	}

	m.logger.Error("Authenticate middleware: failed to resolve user",
		"error", err.Error())
	internal := apiErrors.NewErrInternalServerError(err)
	c.AbortWithStatusJSON(internal.HTTPCode, gin.H{"error": internal.Message})
}
