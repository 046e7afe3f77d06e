package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/tanakrit-dev/userbase-be/internal/config"
	"github.com/tanakrit-dev/userbase-be/internal/http/handlers"
	"github.com/tanakrit-dev/userbase-be/internal/middleware"
	"github.com/tanakrit-dev/userbase-be/internal/security"
	"github.com/tanakrit-dev/userbase-be/internal/service"
	"github.com/tanakrit-dev/userbase-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.UserStore, log zerolog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimid.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	users := service.NewUserService(store, security.NewBcryptHasher(cfg.BcryptCost))
	handlers.NewPingHandler(store, log).Register(r)
	handlers.NewUserHandler(users, log).Register(r)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
