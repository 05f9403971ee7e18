package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dtroode/bloglist-server/internal/logger"
)

// RateLimit throttles requests per client IP with a token bucket.
type RateLimit struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	logger   *logger.Logger
}

// NewRateLimit creates a limiter allowing rps requests per second per client
// with bursts of up to burst requests.
func NewRateLimit(rps float64, burst int, logger *logger.Logger) *RateLimit {
	return &RateLimit{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		logger:   logger,
	}
}

// Handle rejects the request with 429 when the client is over its budget.
func (r *RateLimit) Handle(c *gin.Context) {
	ip := c.ClientIP()
	if !r.limiter(ip).Allow() {
		r.logger.Info("Rate limit middleware: request throttled",
			"client_ip", ip,
			"path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}
	c.Next()
}

func (r *RateLimit) limiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.limiters[key]
	if !ok {
		l = rate.NewLimiter(r.limit, r.burst)
		r.limiters[key] = l
	}
	return l
}
