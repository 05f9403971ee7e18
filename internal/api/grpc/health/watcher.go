// Package health reports storage reachability over the gRPC health protocol.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

// Service is the name the bloglist API is reported under. The empty name
// reports the server as a whole.
const Service = "bloglist.API"

// Watcher periodically pings the store and publishes the result to a health server.
type Watcher struct {
	pinger   model.Pinger
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

// NewWatcher creates a Watcher publishing to server every interval.
func NewWatcher(pinger model.Pinger, server *health.Server, interval time.Duration, logger *logger.Logger) *Watcher {
	return &Watcher{
		pinger:   pinger,
		server:   server,
		interval: interval,
		logger:   logger,
	}
}

// Run checks the store immediately and then on every tick until ctx is done.
// On return every service is reported as NOT_SERVING.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.check(ctx)
	for {
		select {
		case <-ctx.Done():
			w.server.Shutdown()
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *Watcher) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := w.pinger.Ping(pingCtx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		w.logger.Warn("Health watcher: store ping failed",
			"error", err.Error())
	}

	w.server.SetServingStatus("", status)
	w.server.SetServingStatus(Service, status)
}
