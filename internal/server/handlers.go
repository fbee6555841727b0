package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/mesoforge/internal/models"
	"github.com/meltforce/mesoforge/internal/plan"
	"github.com/meltforce/mesoforge/internal/templates"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// errStatus maps engine errors to HTTP statuses: lookup misses are 404,
// storage failures 502 (visible, never swallowed), the rest 400.
func errStatus(err error) int {
	switch {
	case errors.Is(err, plan.ErrMesocycleNotFound),
		errors.Is(err, plan.ErrWorkoutNotFound),
		errors.Is(err, plan.ErrExerciseNotFound),
		errors.Is(err, plan.ErrSetNotFound):
		return http.StatusNotFound
	case plan.IsStorage(err):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) handleListSplits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, templates.Splits)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	if group := r.URL.Query().Get("muscle_group"); group != "" {
		writeJSON(w, http.StatusOK, templates.ByMuscleGroup(group))
		return
	}
	writeJSON(w, http.StatusOK, templates.Catalog)
}

func (s *Server) handleIntensityTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, templates.Bands())
}

type createMesocycleRequest struct {
	Name           string  `json:"name"`
	Split          string  `json:"split"`
	StartDate      string  `json:"startDate"`
	WeekCount      int     `json:"weekCount"`
	IncludeDeload  bool    `json:"includeDeload"`
	ProgressionPct float64 `json:"progressionPct"`
}

func (s *Server) handleCreateMesocycle(w http.ResponseWriter, r *http.Request) {
	var req createMesocycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	split, err := templates.SplitByName(req.Split)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return
	}

	m, err := plan.NewMesocycle(plan.GenerateParams{
		Name:           req.Name,
		Split:          split,
		StartDate:      start,
		WeekCount:      req.WeekCount,
		IncludeDeload:  req.IncludeDeload,
		ProgressionPct: req.ProgressionPct,
	}, s.log)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.SaveMesocycle(r.Context(), m); err != nil {
		s.log.Error("saving mesocycle", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleListMesocycles(w http.ResponseWriter, r *http.Request) {
	list, err := s.db.ListMesocycles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetMesocycle(w http.ResponseWriter, r *http.Request) {
	m, err := s.db.LoadMesocycle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleDeleteMesocycle(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteMesocycle(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type logSetRequest struct {
	plan.SetCoordinate
	CompletedWeight string `json:"completedWeight"`
	CompletedReps   string `json:"completedReps"`
}

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	var req logSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	result, err := s.integrator.LogSet(r.Context(), chi.URLParam(r, "id"),
		req.SetCoordinate, req.CompletedWeight, req.CompletedReps)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type updateTargetsRequest struct {
	plan.SetCoordinate
	Weight string `json:"weight"`
	Reps   string `json:"reps"`
}

func (s *Server) handleUpdateTargets(w http.ResponseWriter, r *http.Request) {
	var req updateTargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	err := s.integrator.UpdateTargets(r.Context(), chi.URLParam(r, "id"),
		req.SetCoordinate, req.Weight, req.Reps)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type feedbackRequest struct {
	plan.SetCoordinate
	WeightFeeling     string `json:"weightFeeling"`
	MuscleActivation  string `json:"muscleActivation"`
	PerformanceRating string `json:"performanceRating"`
	Notes             string `json:"notes"`
}

func (s *Server) handleRecordFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	feeling, ok := models.ParseFeeling(req.WeightFeeling)
	if !ok {
		writeError(w, http.StatusBadRequest, "weightFeeling must be one of too_light, just_right, too_heavy, extremely_heavy")
		return
	}
	err := s.integrator.RecordFeedback(r.Context(), chi.URLParam(r, "id"),
		req.SetCoordinate, models.FeedbackRecord{
			WeightFeeling:     feeling,
			MuscleActivation:  req.MuscleActivation,
			PerformanceRating: req.PerformanceRating,
			Notes:             req.Notes,
		})
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type completeWorkoutRequest struct {
	WeekKey      string `json:"weekKey"`
	WorkoutIndex int    `json:"workoutIndex"`
	Difficulty   string `json:"difficulty"`
}

func (s *Server) handleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	var req completeWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	result, err := s.integrator.CompleteWorkout(r.Context(), chi.URLParam(r, "id"),
		req.WeekKey, req.WorkoutIndex, req.Difficulty)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.QueryHistory(r.Context(), chi.URLParam(r, "id"), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetMesocycleStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
