// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"jokester/src/app/http/handler"
	"jokester/src/app/http/response"
	"jokester/src/app/http/view"
	"jokester/src/app/middleware"
	"jokester/src/core/ports"
	"jokester/src/core/usecase"
	"jokester/src/infra/config"
	"jokester/src/infra/logger"
)

// Sessions is the session store as the server needs it.
type Sessions interface {
	handler.IdentityResolver
	handler.SessionWriter
}

// Deps are the adapters the server is built from.
type Deps struct {
	Jokes    ports.JokeRepository
	Users    ports.UserRepository
	Hasher   ports.PasswordHasher
	Sessions Sessions
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	healthHandler *handler.HealthHandler
	jokeHandler   *handler.JokeHandler
	authHandler   *handler.AuthHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) (*Server, error) {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	tmpl, err := view.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	healthService := usecase.NewHealthService(deps.Jokes, logger.WithComponent(log, "health"))
	jokeService := usecase.NewJokeService(deps.Jokes, logger.WithComponent(log, "jokes"))
	authService := usecase.NewAuthService(deps.Users, deps.Hasher, logger.WithComponent(log, "auth"))

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		healthHandler: handler.NewHealthHandler(healthService),
		jokeHandler:   handler.NewJokeHandler(jokeService, deps.Sessions),
		authHandler:   handler.NewAuthHandler(authService, deps.Sessions),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// RequestID runs first so a recovered panic can still be correlated.
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	s.router.GET("/", func(c *gin.Context) {
		response.Redirect(c, "/jokes/new")
	})

	jokes := s.router.Group("/jokes")
	{
		jokes.GET("/new", s.jokeHandler.New)
		jokes.POST("/new", s.jokeHandler.Create)
		jokes.GET("/:joke_id", s.jokeHandler.Show)
	}

	s.router.GET("/login", s.authHandler.LoginPage)
	s.router.POST("/login", s.authHandler.Login)
	s.router.POST("/logout", s.authHandler.Logout)

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
