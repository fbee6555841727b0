package plan

import (
	"math"
	"strconv"
	"strings"

	"github.com/meltforce/mesoforge/internal/models"
)

// Suggestion is the computed next-week target for one exercise. Set count is
// carried through unchanged — the engine never auto-progresses set count.
type Suggestion struct {
	Weight int `json:"weight"`
	Reps   int `json:"reps"`
	Sets   int `json:"sets"`
}

// Difficulty modifiers, keyed by the workout-level feedback. A deliberately
// coarse global step: hard sessions still progress, just more slowly.
const (
	modifierTooHard = 1.025
	modifierDefault = 1.05
	modifierTooEasy = 1.075
)

// Suggest computes the next-week target for an exercise from its completed
// sets and the workout-level difficulty feedback. Returns ok=false when no
// sets are completed or no usable weight was recorded — silence, not an
// error: progression is best-effort.
func Suggest(ex models.ExerciseInstance, difficulty string) (Suggestion, bool) {
	completed := ex.CompletedSets()
	if len(completed) == 0 {
		return Suggestion{}, false
	}

	var weightSum, repsSum float64
	for _, s := range completed {
		weightSum += parseNumeric(s.CompletedWeight)
		reps := parseNumeric(s.CompletedReps)
		if strings.TrimSpace(s.CompletedReps) == "" {
			// No recorded reps: assume the athlete hit the set target.
			reps = parseNumeric(s.TargetReps)
			if reps == 0 {
				reps = float64(ex.TargetReps)
			}
		}
		repsSum += reps
	}

	avgWeight := weightSum / float64(len(completed))
	if avgWeight <= 0 {
		return Suggestion{}, false
	}
	avgReps := repsSum / float64(len(completed))

	return Suggestion{
		Weight: int(math.Round(avgWeight * modifierFor(difficulty))),
		Reps:   int(math.Round(avgReps)),
		Sets:   len(ex.GeneratedSets),
	}, true
}

func modifierFor(difficulty string) float64 {
	switch models.NormalizeDifficulty(difficulty) {
	case "too_hard":
		return modifierTooHard
	case "too_easy":
		return modifierTooEasy
	default:
		return modifierDefault
	}
}

// parseNumeric extracts a float from free-form user input. Non-numeric input
// counts as zero rather than failing the whole suggestion.
func parseNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
