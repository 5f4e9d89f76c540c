// Copyright (c) 2026 Picstream. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vantran/picstream/internal/chat"
	"github.com/vantran/picstream/internal/platform/config"
	"github.com/vantran/picstream/internal/platform/constants"
	"github.com/vantran/picstream/internal/platform/middleware"
	"github.com/vantran/picstream/internal/posts"
	"github.com/vantran/picstream/internal/users/account"
	"github.com/vantran/picstream/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the public signup and login routes.
	Auth *auth.Handler

	// Account handles the profile and follow-graph routes.
	Account *account.Handler

	// Posts handles the feed, upload, and engagement routes.
	Posts *posts.Handler

	// Chat handles the inbox, conversation, and messaging routes.
	Chat *chat.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all routes.
//
// Signup and login stay outside the authentication gate; every other
// application route sits behind it. Health probes and static media are
// served unauthenticated.
func NewServer(cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Public Routes
	r.Post("/signup", h.Auth.Signup)
	r.Post("/login", h.Auth.Login)

	// # Authenticated Routes
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticate(verifier))

		protected.Get("/home", h.Posts.Home)
		protected.Post("/upload", h.Posts.Upload)
		protected.Post("/posts/{id}/like", h.Posts.Like)
		protected.Post("/posts/{id}/comments", h.Posts.AddComment)

		protected.Get("/profile", h.Account.Profile)
		protected.Post("/follow/{id}", h.Account.Follow)
		protected.Delete("/follow/{id}", h.Account.Unfollow)

		protected.Get("/inbox", h.Chat.Inbox)
		protected.Get("/conversation/{id}", h.Chat.Conversation)
		protected.Post("/message", h.Chat.SendMessage)
	})

	// # Static Media
	// Uploaded files are served back verbatim under /media/<stored-name>.
	mediaServer := http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaDir)))
	r.Get("/media/*", func(writer http.ResponseWriter, request *http.Request) {
		mediaServer.ServeHTTP(writer, request)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	shutdownContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownContext)
}
