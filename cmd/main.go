package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/reflection"

	grpchealth "github.com/dtroode/bloglist-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/bloglist-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/bloglist-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/bloglist-server/internal/api/http/context"
	httprouter "github.com/dtroode/bloglist-server/internal/api/http/router"
	httpserver "github.com/dtroode/bloglist-server/internal/api/http/server"
	"github.com/dtroode/bloglist-server/internal/config"
	"github.com/dtroode/bloglist-server/internal/hasher"
	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
	"github.com/dtroode/bloglist-server/internal/repository/mongodb"
	"github.com/dtroode/bloglist-server/internal/repository/postgres"
	"github.com/dtroode/bloglist-server/internal/server"
	"github.com/dtroode/bloglist-server/internal/service"
	"github.com/dtroode/bloglist-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

// stores is the storage backend selected by configuration.
type stores struct {
	users   model.UserStore
	blogs   model.BlogStore
	persons model.PersonStore
	pinger  model.Pinger
	close   func(ctx context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}
	passwordHasher := hasher.NewBcrypt(cfg.BcryptCost)

	tokenService := service.NewTokenService(tokenManager, st.users, logger)
	authService := service.NewAuth(st.users, passwordHasher, tokenService, logger)
	userService := service.NewUser(st.users, st.blogs, passwordHasher, logger)
	blogService := service.NewBlog(st.blogs, st.users, service.BlogOptions{
		EnforceUpdateOwnership: cfg.Blog.EnforceUpdateOwnership,
		ConsistencyRetries:     cfg.Blog.ConsistencyRetries,
		RetryInterval:          cfg.Blog.RetryInterval,
	}, logger)
	personService := service.NewPerson(st.persons, logger)

	httpSrv := registerHTTPServer(cfg, logger, httprouter.Services{
		Auth:     authService,
		User:     userService,
		Blog:     blogService,
		Person:   personService,
		Identity: tokenService,
	})

	healthServer := health.NewServer()
	watcher := grpchealth.NewWatcher(st.pinger, healthServer, cfg.GRPC.HealthInterval, logger)
	grpcSrv := registerGRPCServer(logger, healthServer, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		watcher.Run(ctx)
	}()

	httpSL := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	startServer(&wg, logger, httpSrv, httpSL, stop)
	startServer(&wg, logger, grpcSrv, server.NewPlainListener(), stop)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range []model.Server{httpSrv, grpcSrv} {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		conn, err := mongodb.NewConnection(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:   mongodb.NewUserRepository(conn),
			blogs:   mongodb.NewBlogRepository(conn),
			persons: mongodb.NewPersonRepository(conn),
			pinger:  conn,
			close:   conn.Close,
		}, nil
	default:
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:   postgres.NewUserRepository(conn),
			blogs:   postgres.NewBlogRepository(conn),
			persons: postgres.NewPersonRepository(conn),
			pinger:  conn,
			close:   func(context.Context) error { return conn.Close() },
		}, nil
	}
}

func registerHTTPServer(cfg *config.Config, logger *logger.Logger, services httprouter.Services) *httpserver.HTTPServer {
	r := httprouter.New(services, httpctx.NewManager(), httprouter.LoginLimit{
		RPS:   cfg.RateLimit.LoginRPS,
		Burst: cfg.RateLimit.LoginBurst,
	}, logger)

	return httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)
}

func registerGRPCServer(logger *logger.Logger, healthServer *health.Server, addr string) *grpcserver.GRPCServer {
	r := grpcrouter.New(healthServer, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcserver.NewGRPCServer(s, addr)
}

// startServer runs s in the background. A server that fails to start cancels
// the whole process through stop.
func startServer(wg *sync.WaitGroup, logger *logger.Logger, s model.Server, sl model.SecurityLayer, stop context.CancelFunc) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err, "address", s.Address())
			stop()
		}
	}()
}
