package plan

import (
	"strconv"

	"github.com/meltforce/mesoforge/internal/models"
)

// Applied pairs a suggestion with the coordinate it was written to, for
// logging and API responses.
type Applied struct {
	ExerciseID string     `json:"exerciseId"`
	Target     Target     `json:"target"`
	Suggestion Suggestion `json:"suggestion"`
}

// Apply writes suggestions into their matched next-week exercises and returns
// a new mesocycle value; the input is never mutated, so the current-week view
// a caller holds cannot alias the updated document.
//
// Progression is applied at the exercise level: the exercise's working
// weight/reps and every generated set's targets are overwritten uniformly.
// Completed fields of the target week are never touched — they belong to that
// week's own future completion. Reapplying the same suggestions is a no-op.
func Apply(m *models.Mesocycle, updates []Applied) *models.Mesocycle {
	if len(updates) == 0 {
		return m
	}
	out := m.Clone()
	for _, u := range updates {
		ws := out.Session(u.Target.WeekKey, u.Target.WorkoutIndex)
		if ws == nil || u.Target.ExerciseIndex < 0 || u.Target.ExerciseIndex >= len(ws.Exercises) {
			continue
		}
		applySuggestion(&ws.Exercises[u.Target.ExerciseIndex], u.Suggestion)
	}
	return out
}

func applySuggestion(ex *models.ExerciseInstance, s Suggestion) {
	weight := strconv.Itoa(s.Weight)
	reps := strconv.Itoa(s.Reps)
	ex.Weight = weight
	ex.Reps = reps
	for i := range ex.GeneratedSets {
		ex.GeneratedSets[i].TargetWeight = weight
		ex.GeneratedSets[i].TargetReps = reps
	}
}
