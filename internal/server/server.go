// Package server exposes the plan repository and generation gateway over
// HTTP for the presentation layer. Reads are open; every mutation and the
// generation call require the API key.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashankd123/workout-frontend/internal/generate"
	"github.com/shashankd123/workout-frontend/internal/repo"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	repo    *repo.Repository
	gateway *generate.Gateway
	log     *slog.Logger
	apiKey  string
	router  chi.Router

	// generating guards the single outstanding generation request.
	generating chan struct{}
}

// New creates a new Server with all routes configured.
func New(r *repo.Repository, g *generate.Gateway, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		repo:       r,
		gateway:    g,
		log:        log,
		apiKey:     apiKey,
		router:     chi.NewRouter(),
		generating: make(chan struct{}, 1),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints (no auth — a tsnet deployment gates access upstream)
	s.router.Get("/api/v1/plan", s.handleGetPlan)
	s.router.Get("/api/v1/plan/{day}", s.handleGetDay)
	s.router.Get("/api/v1/user", s.handleGetUser)

	// Mutation and generation endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/plan", s.handleReplacePlan)
		r.Post("/api/v1/plan/{day}/title", s.handleSetTitle)
		r.Post("/api/v1/plan/{day}/exercises", s.handleAddExercise)
		r.Post("/api/v1/plan/{day}/exercises/{index}", s.handleSetField)
		r.Delete("/api/v1/plan/{day}/exercises/{index}", s.handleDeleteExercise)
		r.Post("/api/v1/plan/{day}/exercises/{index}/toggle", s.handleToggle)
		r.Post("/api/v1/plan/{day}/exercises/{index}/move", s.handleMove)
		r.Post("/api/v1/plan/{day}/reset", s.handleResetDay)
		r.Post("/api/v1/plan/{day}/reset-completion", s.handleResetCompletion)
		r.Post("/api/v1/generate", s.handleGenerate)
	})
}
