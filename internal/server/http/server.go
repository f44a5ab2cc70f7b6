// Package httpserver provides the HTTP REST API for the board game reviews service.
package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/boardgamereviews/reviews-service/internal/database"
	"github.com/boardgamereviews/reviews-service/internal/events"
	"github.com/boardgamereviews/reviews-service/internal/observability"
	"github.com/boardgamereviews/reviews-service/internal/repository"
)

// HealthChecker reports database health. *database.DB implements it.
type HealthChecker interface {
	Health(ctx context.Context) database.HealthStatus
}

// Server is the HTTP REST API server.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	categories repository.CategoryRepository
	users      repository.UserRepository
	reviews    repository.ReviewRepository
	comments   repository.CommentRepository
	health     HealthChecker
	publisher  events.Publisher
	metrics    *observability.Metrics
	logger     zerolog.Logger
}

// Config holds HTTP server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Dependencies are the collaborators the handlers call. Publisher and
// Metrics may be nil.
type Dependencies struct {
	Categories repository.CategoryRepository
	Users      repository.UserRepository
	Reviews    repository.ReviewRepository
	Comments   repository.CommentRepository
	Health     HealthChecker
	Publisher  events.Publisher
	Metrics    *observability.Metrics
}

// NewServer creates a new HTTP server with all dependencies.
func NewServer(cfg Config, deps Dependencies, logger zerolog.Logger) *Server {
	s := &Server{
		categories: deps.Categories,
		users:      deps.Users,
		reviews:    deps.Reviews,
		comments:   deps.Comments,
		health:     deps.Health,
		publisher:  deps.Publisher,
		metrics:    deps.Metrics,
		logger:     logger.With().Str("component", "http-server").Logger(),
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(correlationIDMiddleware)
	r.Use(jsonContentTypeMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.getEndpoints)
		r.Get("/health", s.getHealthMessage)

		r.Get("/categories", s.listCategories)
		r.Post("/categories", s.createCategory)

		r.Get("/reviews", s.listReviews)
		r.Post("/reviews", s.createReview)
		r.Get("/reviews/{review_id}", s.getReview)
		r.Patch("/reviews/{review_id}", s.patchReviewVotes)
		r.Get("/reviews/{review_id}/comments", s.listReviewComments)
		r.Post("/reviews/{review_id}/comments", s.createReviewComment)

		r.Patch("/comments/{comment_id}", s.patchCommentVotes)
		r.Delete("/comments/{comment_id}", s.deleteComment)

		r.Get("/users", s.listUsers)
		r.Get("/users/{username}", s.getUser)
	})

	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// healthHandler reports liveness together with database health.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := s.checkHealth(r.Context())
	if health.Healthy() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": health.Status})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status":   "unhealthy",
		"database": health.Status,
		"error":    health.Error,
	})
}

// readinessHandler reports whether the service can serve traffic.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	health := s.checkHealth(r.Context())
	if !health.Healthy() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "not_ready",
			"database": health.Status,
			"error":    health.Error,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "healthy",
	})
}

func (s *Server) checkHealth(ctx context.Context) database.HealthStatus {
	if s.health == nil {
		return database.HealthStatus{Status: "unknown", Error: "no health checker configured"}
	}
	return s.health.Health(ctx)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// Headers are already sent, so an encode failure cannot be reported.
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a {"msg": ...} error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{
		"msg": message,
	})
}
