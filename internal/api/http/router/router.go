package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/bloglist-server/internal/api/http/handler"
	"github.com/dtroode/bloglist-server/internal/api/http/middleware"
	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

// Services groups the services the HTTP API is built on.
type Services struct {
	Auth     handler.AuthService
	User     handler.UserService
	Blog     handler.BlogService
	Person   handler.PersonService
	Identity middleware.IdentityResolver
}

// LoginLimit is the per-client rate limit applied to the login endpoint.
type LoginLimit struct {
	RPS   float64
	Burst int
}

// Router represents the HTTP router for the bloglist API.
// It manages route registration and middleware configuration.
type Router struct {
	services       Services
	contextManager model.ContextManager
	loginLimit     LoginLimit
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - services: The services backing the handlers
//   - contextManager: Stores the authenticated user in request contexts
//   - loginLimit: Rate limit for login attempts
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	services Services,
	contextManager model.ContextManager,
	loginLimit LoginLimit,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		loginLimit:     loginLimit,
		logger:         logger,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Identity, r.contextManager, r.logger)

	e := gin.New()
	e.Use(gin.Recovery(), logging.Handle, authenticate.Handle)

	r.registerAuthRoutes(e)
	r.registerUserRoutes(e)
	r.registerBlogRoutes(e)
	r.registerPersonRoutes(e)

	e.NoRoute(handler.UnknownEndpoint)

	return e
}

func (r *Router) registerAuthRoutes(e *gin.Engine) {
	authHandler := handler.NewAuth(r.services.Auth, r.logger)
	rateLimit := middleware.NewRateLimit(r.loginLimit.RPS, r.loginLimit.Burst, r.logger)

	e.POST("/api/login", rateLimit.Handle, authHandler.Login)
}

func (r *Router) registerUserRoutes(e *gin.Engine) {
	userHandler := handler.NewUser(r.services.User, r.logger)

	users := e.Group("/api/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
}

func (r *Router) registerBlogRoutes(e *gin.Engine) {
	blogHandler := handler.NewBlog(r.services.Blog, r.contextManager, r.logger)

	blogs := e.Group("/api/blogs")
	blogs.GET("", blogHandler.List)
	blogs.GET("/stats", blogHandler.Stats)
	blogs.GET("/:id", blogHandler.Get)
	blogs.POST("", blogHandler.Create)
	blogs.PUT("/:id", blogHandler.Update)
	blogs.DELETE("/:id", blogHandler.Delete)
}

func (r *Router) registerPersonRoutes(e *gin.Engine) {
	personHandler := handler.NewPerson(r.services.Person, r.logger)

	e.GET("/info", personHandler.Info)

	persons := e.Group("/api/persons")
	persons.GET("", personHandler.List)
	persons.GET("/:id", personHandler.Get)
	persons.POST("", personHandler.Create)
	persons.PUT("/:id", personHandler.Update)
	persons.DELETE("/:id", personHandler.Delete)
}
