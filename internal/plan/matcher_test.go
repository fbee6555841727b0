package plan

import (
	"testing"
	"time"

	"github.com/meltforce/mesoforge/internal/models"
)

func sessionOn(id string, d time.Time, names ...string) models.WorkoutSession {
	exercises := make([]models.ExerciseInstance, len(names))
	for i, n := range names {
		exercises[i] = models.ExerciseInstance{ID: id + "-ex" + n, Name: n}
	}
	return models.WorkoutSession{ID: id, Date: d, Exercises: exercises}
}

func mesoWithWeeks(weeks map[string][]models.WorkoutSession) *models.Mesocycle {
	return &models.Mesocycle{ID: "m", Workouts: weeks}
}

// TestNextWeekKeyExact verifies the fast path: "week<N+1>" exists.
func TestNextWeekKeyExact(t *testing.T) {
	m := mesoWithWeeks(map[string][]models.WorkoutSession{
		"week1": {}, "week2": {},
	})
	key, ok := NewMatcher().NextWeekKey(m, 1)
	if !ok || key != "week2" {
		t.Errorf("key = %q ok=%v, want week2", key, ok)
	}
}

// TestNextWeekKeyNumeral verifies the fallback to any key containing the
// numeral N+1 when the canonical key is absent.
func TestNextWeekKeyNumeral(t *testing.T) {
	m := mesoWithWeeks(map[string][]models.WorkoutSession{
		"week1": {}, "Week 2": {},
	})
	key, ok := NewMatcher().NextWeekKey(m, 1)
	if !ok || key != "Week 2" {
		t.Errorf("key = %q ok=%v, want \"Week 2\"", key, ok)
	}
}

// TestNextWeekKeySmallestGreater verifies the final fallback: the smallest
// week-bearing key strictly greater than the current week.
func TestNextWeekKeySmallestGreater(t *testing.T) {
	m := mesoWithWeeks(map[string][]models.WorkoutSession{
		"week1": {}, "week4": {}, "week6": {},
	})
	key, ok := NewMatcher().NextWeekKey(m, 2)
	if !ok || key != "week4" {
		t.Errorf("key = %q ok=%v, want week4", key, ok)
	}
}

// TestNextWeekKeyNone verifies the last week of a block resolves to nothing,
// which is expected and not an error.
func TestNextWeekKeyNone(t *testing.T) {
	m := mesoWithWeeks(map[string][]models.WorkoutSession{
		"week1": {}, "week2": {},
	})
	if _, ok := NewMatcher().NextWeekKey(m, 2); ok {
		t.Error("resolved a next week past the end of the block")
	}
}

// TestMatchWorkoutSameWeekday verifies weekday matching wins over name overlap.
func TestMatchWorkoutSameWeekday(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := sessionOn("cur", monday, "Squat")
	m := mesoWithWeeks(map[string][]models.WorkoutSession{
		"week2": {
			sessionOn("a", monday.AddDate(0, 0, 9), "Squat"), // Wednesday
			sessionOn("b", monday.AddDate(0, 0, 7), "Bench"), // Monday
		},
	})
	idx, ok := NewMatcher().MatchWorkout(m, "week2", current)
	if !ok || idx != 1 {
		t.Errorf("idx = %d ok=%v, want 1 (same weekday)", idx, ok)
	}
}

// TestMatchWorkoutNameOverlap verifies the overlap count decides when no
// weekday matches, with ties keeping the earliest workout.
func TestMatchWorkoutNameOverlap(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 8)
	wednesday := monday.AddDate(0, 0, 9)
	current := sessionOn("cur", monday, "Squat", "Leg Press", "Leg Curl")
	m := mesoWithWeeks(map[string][]models.WorkoutSession{
		"week2": {
			sessionOn("a", tuesday, "Bench", "Row"),
			sessionOn("b", wednesday, "squat", "leg press"), // case-insensitive overlap 2
		},
	})
	idx, ok := NewMatcher().MatchWorkout(m, "week2", current)
	if !ok || idx != 1 {
		t.Errorf("idx = %d ok=%v, want 1 (best overlap)", idx, ok)
	}
}

// TestMatchWorkoutEmptyWeek verifies an empty (deload) week yields no match.
func TestMatchWorkoutEmptyWeek(t *testing.T) {
	m := mesoWithWeeks(map[string][]models.WorkoutSession{"week2": {}})
	current := sessionOn("cur", time.Now(), "Squat")
	if _, ok := NewMatcher().MatchWorkout(m, "week2", current); ok {
		t.Error("matched a workout in an empty week")
	}
}

// TestMatchExerciseTierOrdering verifies identity wins even when another
// candidate with a different ID matches by name.
func TestMatchExerciseTierOrdering(t *testing.T) {
	ex := models.ExerciseInstance{ID: "w1-chest-1", Name: "Barbell Bench Press"}
	target := models.WorkoutSession{Exercises: []models.ExerciseInstance{
		{ID: "w2-other", Name: "Barbell Bench Press"}, // tier-2 candidate first in list
		{ID: "w1-chest-1", Name: "Renamed Press"},     // tier-1 candidate
	}}
	idx, tier, ok := NewMatcher().MatchExercise(target, ex, 0)
	if !ok || tier != TierIdentity || idx != 1 {
		t.Errorf("idx=%d tier=%v ok=%v, want identity match at 1", idx, tier, ok)
	}
}

// TestMatchExerciseExactName verifies tier 2 is case-insensitive.
func TestMatchExerciseExactName(t *testing.T) {
	ex := models.ExerciseInstance{ID: "a", Name: "BARBELL ROW"}
	target := models.WorkoutSession{Exercises: []models.ExerciseInstance{
		{ID: "x", Name: "Deadlift"},
		{ID: "y", Name: "barbell row"},
	}}
	idx, tier, ok := NewMatcher().MatchExercise(target, ex, 5)
	if !ok || tier != TierExactName || idx != 1 {
		t.Errorf("idx=%d tier=%v ok=%v, want exact-name at 1", idx, tier, ok)
	}
}

// TestMatchExerciseFuzzy verifies tier 3: substring containment and shared
// movement keywords.
func TestMatchExerciseFuzzy(t *testing.T) {
	// Substring: "Bench" ⊂ "Incline Bench"
	ex := models.ExerciseInstance{ID: "a", Name: "Incline Bench"}
	target := models.WorkoutSession{Exercises: []models.ExerciseInstance{
		{ID: "x", Name: "Deadlift"},
		{ID: "y", Name: "Bench"},
	}}
	idx, tier, ok := NewMatcher().MatchExercise(target, ex, 9)
	if !ok || tier != TierFuzzyName || idx != 1 {
		t.Errorf("substring: idx=%d tier=%v ok=%v", idx, tier, ok)
	}

	// Keyword: both contain "squat"
	ex = models.ExerciseInstance{ID: "a", Name: "Hack Squat Machine"}
	target = models.WorkoutSession{Exercises: []models.ExerciseInstance{
		{ID: "x", Name: "Leg Curl"},
		{ID: "y", Name: "Barbell Back Squat"},
	}}
	idx, tier, ok = NewMatcher().MatchExercise(target, ex, 9)
	if !ok || tier != TierFuzzyName || idx != 1 {
		t.Errorf("keyword: idx=%d tier=%v ok=%v", idx, tier, ok)
	}
}

// TestMatchExercisePositional verifies tier 4 and the all-tiers-miss case.
func TestMatchExercisePositional(t *testing.T) {
	ex := models.ExerciseInstance{ID: "a", Name: "Cable Crunch"}
	target := models.WorkoutSession{Exercises: []models.ExerciseInstance{
		{ID: "x", Name: "Hip Thrust"},
		{ID: "y", Name: "Lunge"},
	}}
	idx, tier, ok := NewMatcher().MatchExercise(target, ex, 1)
	if !ok || tier != TierPosition || idx != 1 {
		t.Errorf("idx=%d tier=%v ok=%v, want positional at 1", idx, tier, ok)
	}

	// Index out of range and nothing else matches: no match, no error.
	if _, _, ok := NewMatcher().MatchExercise(target, ex, 7); ok {
		t.Error("matched with out-of-range index and no name similarity")
	}
}

// TestFindNextWeekTargetEndToEnd verifies the composed resolution over a
// generated-shape document.
func TestFindNextWeekTargetEndToEnd(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cur := sessionOn("w1", monday, "Squat", "Leg Press")
	next := sessionOn("w2", monday.AddDate(0, 0, 7), "Squat", "Leg Press")
	m := mesoWithWeeks(map[string][]models.WorkoutSession{
		"week1": {cur},
		"week2": {next},
	})

	target, ok := FindNextWeekTarget(NewMatcher(), m, cur, 1, cur.Exercises[1], 1)
	if !ok {
		t.Fatal("expected a target")
	}
	want := Target{WeekKey: "week2", WorkoutIndex: 0, ExerciseIndex: 1}
	if target != want {
		t.Errorf("target = %+v, want %+v", target, want)
	}

	// Final week: no-op, not an error.
	if _, ok := FindNextWeekTarget(NewMatcher(), m, next, 2, next.Exercises[0], 0); ok {
		t.Error("resolved a target past the final week")
	}
}
