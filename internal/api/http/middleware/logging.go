package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/bloglist-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	attrs := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}

	switch {
	case status >= 500:
		l.logger.Error("HTTP request failed", attrs...)
	default:
		l.logger.Info("HTTP request completed", attrs...)
	}
}
