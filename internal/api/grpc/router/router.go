package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dtroode/bloglist-server/internal/api/grpc/middleware"
	"github.com/dtroode/bloglist-server/internal/logger"
)

// Router represents the gRPC router for the operational endpoints.
type Router struct {
	healthServer *health.Server
	logger       *logger.Logger
}

// New creates new gRPC Router instance serving healthServer.
func New(healthServer *health.Server, logger *logger.Logger) *Router {
	return &Router{
		healthServer: healthServer,
		logger:       logger,
	}
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging and panic recovery interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(r.recover)),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(r.recover)),
		),
	)
	healthpb.RegisterHealthServer(s, r.healthServer)

	return s
}

func (r *Router) recover(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked", "panic", p)
	return status.Error(codes.Internal, "internal server error")
}
