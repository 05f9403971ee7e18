package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/bloglist-server/internal/logger"
)

// Logging is a unary interceptor that logs gRPC calls and their results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status code for each unary call.
// Health probes are frequent, so successful calls are logged at debug level.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	attrs := []any{
		"method", info.FullMethod,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", code.String(),
	}

	switch code {
	case codes.OK:
		l.logger.Debug("gRPC call completed", attrs...)
	case codes.Internal, codes.Unknown, codes.Unavailable:
		l.logger.Error("gRPC call failed", append(attrs, "error", err.Error())...)
	default:
		l.logger.Info("gRPC call rejected", append(attrs, "error", err.Error())...)
	}

	return resp, err
}
