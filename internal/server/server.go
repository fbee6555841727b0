// Package server exposes the planning engine over a small JSON API.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/mesoforge/internal/plan"
	"github.com/meltforce/mesoforge/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db         *storage.DB
	integrator *plan.Integrator
	log        *slog.Logger
	apiKey     string
	router     chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, integrator *plan.Integrator, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:         db,
		integrator: integrator,
		log:        log,
		apiKey:     apiKey,
		router:     chi.NewRouter(),
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

	// Template library (read-only, no auth)
	s.router.Get("/api/v1/templates/splits", s.handleListSplits)
	s.router.Get("/api/v1/templates/exercises", s.handleListExercises)
	s.router.Get("/api/v1/intensity", s.handleIntensityTable)

	// Mesocycle reads
	s.router.Get("/api/v1/mesocycles", s.handleListMesocycles)
	s.router.Get("/api/v1/mesocycles/{id}", s.handleGetMesocycle)
	s.router.Get("/api/v1/mesocycles/{id}/history", s.handleHistory)
	s.router.Get("/api/v1/mesocycles/{id}/stats", s.handleStats)

	// Mutations (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/mesocycles", s.handleCreateMesocycle)
		r.Delete("/api/v1/mesocycles/{id}", s.handleDeleteMesocycle)
		r.Post("/api/v1/mesocycles/{id}/sets", s.handleLogSet)
		r.Post("/api/v1/mesocycles/{id}/targets", s.handleUpdateTargets)
		r.Post("/api/v1/mesocycles/{id}/feedback", s.handleRecordFeedback)
		r.Post("/api/v1/mesocycles/{id}/complete", s.handleCompleteWorkout)
	})
}
