package plan

import (
	"sort"
	"strconv"
	"strings"

	"github.com/meltforce/mesoforge/internal/models"
)

// Target addresses an exercise inside a mesocycle document by typed
// coordinates. Together with a set index it is sufficient to navigate the
// serialized document, so no path strings are needed anywhere.
type Target struct {
	WeekKey       string `json:"weekKey"`
	WorkoutIndex  int    `json:"workoutIndex"`
	ExerciseIndex int    `json:"exerciseIndex"`
}

// MatchTier records which fallback level produced an exercise match.
type MatchTier int

const (
	TierIdentity MatchTier = iota + 1
	TierExactName
	TierFuzzyName
	TierPosition
)

func (t MatchTier) String() string {
	switch t {
	case TierIdentity:
		return "identity"
	case TierExactName:
		return "exact-name"
	case TierFuzzyName:
		return "fuzzy-name"
	case TierPosition:
		return "position"
	}
	return "none"
}

// Matcher locates the workout and exercise in the following week that
// correspond to a just-completed one. Exercises have no stable identifier
// across weeks, so this is inherently heuristic; the interface exists so the
// keyword set and tie-break rules can be swapped without touching the
// propagator.
type Matcher interface {
	// NextWeekKey resolves the workouts-map key for the week after
	// currentWeek. ok=false means the mesocycle has no later week, which is
	// expected at the end of a block.
	NextWeekKey(m *models.Mesocycle, currentWeek int) (string, bool)

	// MatchWorkout picks the workout inside weekKey that corresponds to
	// current. ok=false when the week has no workouts (deload).
	MatchWorkout(m *models.Mesocycle, weekKey string, current models.WorkoutSession) (int, bool)

	// MatchExercise picks the exercise inside target that corresponds to ex,
	// which sits at exIndex in the current workout. ok=false means no tier
	// matched; the exercise is simply not carried forward.
	MatchExercise(target models.WorkoutSession, ex models.ExerciseInstance, exIndex int) (int, MatchTier, bool)
}

// fuzzyKeywords are movement words shared by common exercise-name variants
// ("Barbell Bench Press" / "Incline Bench"). Matching on them is tier 3.
var fuzzyKeywords = []string{"squat", "bench", "press", "row", "curl", "deadlift", "fly"}

// TierMatcher is the default Matcher: identity, exact name, fuzzy name, then
// position, in that order.
type TierMatcher struct {
	Keywords []string
}

// NewMatcher returns a TierMatcher with the default keyword set.
func NewMatcher() *TierMatcher {
	return &TierMatcher{Keywords: fuzzyKeywords}
}

// NextWeekKey resolves in order: the exact "week<N+1>" key; any key whose text
// contains the numeral N+1; the smallest week-bearing key strictly greater
// than N. Keys that do not parse are not eligible.
func (tm *TierMatcher) NextWeekKey(m *models.Mesocycle, currentWeek int) (string, bool) {
	next := currentWeek + 1
	exact := models.WeekKey(next)
	if _, ok := m.Workouts[exact]; ok {
		return exact, true
	}

	keys := make([]string, 0, len(m.Workouts))
	for k := range m.Workouts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	numeral := strconv.Itoa(next)
	for _, k := range keys {
		if strings.Contains(k, numeral) {
			return k, true
		}
	}

	bestWeek := 0
	bestKey := ""
	for _, k := range keys {
		n, ok := models.ParseWeekKey(k)
		if !ok || n <= currentWeek {
			continue
		}
		if bestKey == "" || n < bestWeek {
			bestWeek, bestKey = n, k
		}
	}
	if bestKey == "" {
		return "", false
	}
	return bestKey, true
}

// MatchWorkout prefers the workout on the same day of the week, then the one
// sharing the most exercise names with current, then the first in the week.
// Ties keep the earliest list position.
func (tm *TierMatcher) MatchWorkout(m *models.Mesocycle, weekKey string, current models.WorkoutSession) (int, bool) {
	sessions := m.Workouts[weekKey]
	if len(sessions) == 0 {
		return 0, false
	}

	for i, ws := range sessions {
		if ws.Date.Weekday() == current.Date.Weekday() {
			return i, true
		}
	}

	bestIdx, bestOverlap := 0, 0
	currentNames := nameSet(current.Exercises)
	for i, ws := range sessions {
		overlap := 0
		for _, ex := range ws.Exercises {
			if currentNames[strings.ToLower(ex.Name)] {
				overlap++
			}
		}
		if overlap > bestOverlap {
			bestIdx, bestOverlap = i, overlap
		}
	}
	return bestIdx, true
}

// MatchExercise evaluates the four tiers in order against the target workout.
func (tm *TierMatcher) MatchExercise(target models.WorkoutSession, ex models.ExerciseInstance, exIndex int) (int, MatchTier, bool) {
	// Tier 1: same instance ID. Only holds when both workouts came from the
	// same template-day pairing, but it is exact when it does.
	for i, cand := range target.Exercises {
		if cand.ID == ex.ID {
			return i, TierIdentity, true
		}
	}

	lower := strings.ToLower(ex.Name)
	for i, cand := range target.Exercises {
		if strings.ToLower(cand.Name) == lower {
			return i, TierExactName, true
		}
	}

	// Substring containment across all candidates before keyword overlap:
	// "press" alone would pull "Overhead Press" toward "Barbell Bench Press"
	// when "Seated Overhead Press" sits further down the list.
	for i, cand := range target.Exercises {
		if containsName(lower, strings.ToLower(cand.Name)) {
			return i, TierFuzzyName, true
		}
	}
	for i, cand := range target.Exercises {
		if tm.sharedKeyword(lower, strings.ToLower(cand.Name)) {
			return i, TierFuzzyName, true
		}
	}

	if exIndex >= 0 && exIndex < len(target.Exercises) {
		return exIndex, TierPosition, true
	}
	return 0, 0, false
}

func containsName(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func (tm *TierMatcher) sharedKeyword(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	for _, kw := range tm.Keywords {
		if strings.Contains(a, kw) && strings.Contains(b, kw) {
			return true
		}
	}
	return false
}

// FindNextWeekTarget runs the full resolution chain for a single exercise.
// ok=false covers every expected miss: last week of the block, empty deload
// week, or no exercise tier matching. None of these are errors.
func FindNextWeekTarget(mt Matcher, m *models.Mesocycle, current models.WorkoutSession, currentWeek int, ex models.ExerciseInstance, exIndex int) (Target, bool) {
	weekKey, ok := mt.NextWeekKey(m, currentWeek)
	if !ok {
		return Target{}, false
	}
	workoutIdx, ok := mt.MatchWorkout(m, weekKey, current)
	if !ok {
		return Target{}, false
	}
	exIdx, _, ok := mt.MatchExercise(m.Workouts[weekKey][workoutIdx], ex, exIndex)
	if !ok {
		return Target{}, false
	}
	return Target{WeekKey: weekKey, WorkoutIndex: workoutIdx, ExerciseIndex: exIdx}, true
}

func nameSet(exercises []models.ExerciseInstance) map[string]bool {
	out := make(map[string]bool, len(exercises))
	for _, ex := range exercises {
		out[strings.ToLower(ex.Name)] = true
	}
	return out
}
