package templates

import (
	"fmt"

	"github.com/meltforce/mesoforge/internal/models"
)

func pick(ids ...string) []models.ExerciseTemplate {
	out := make([]models.ExerciseTemplate, 0, len(ids))
	for _, id := range ids {
		for _, group := range Catalog {
			for _, ex := range group {
				if ex.ID == id {
					out = append(out, ex)
				}
			}
		}
	}
	return out
}

// Splits is the library of named weekly split templates. Weekdays use the
// time.Weekday convention (0 = Sunday). The last two entries are the
// hand-authored detailed programs; the rest are assembled from the catalog.
var Splits = []models.SplitTemplate{
	{
		Name: "Upper/Lower",
		Workouts: []models.WorkoutTemplate{
			{Name: "Upper Body", Weekdays: []int{1, 4}, Exercises: pick("chest-1", "back-3", "shoulders-1", "back-4", "biceps-1", "triceps-2")},
			{Name: "Lower Body", Weekdays: []int{2, 5}, Exercises: pick("quads-1", "hamstrings-1", "quads-4", "hamstrings-2", "calves-1")},
		},
	},
	{
		Name: "Push/Pull/Legs",
		Workouts: []models.WorkoutTemplate{
			{Name: "Push", Weekdays: []int{1}, Exercises: pick("chest-1", "shoulders-1", "chest-2", "shoulders-2", "triceps-2")},
			{Name: "Pull", Weekdays: []int{3}, Exercises: pick("back-1", "back-2", "back-3", "shoulders-3", "biceps-1")},
			{Name: "Legs", Weekdays: []int{5}, Exercises: pick("quads-1", "hamstrings-1", "quads-2", "hamstrings-2", "calves-1")},
		},
	},
	{
		Name: "Full Body",
		Workouts: []models.WorkoutTemplate{
			{Name: "Full Body A", Weekdays: []int{1}, Exercises: pick("quads-1", "chest-1", "back-3", "shoulders-2", "core-1")},
			{Name: "Full Body B", Weekdays: []int{3}, Exercises: pick("back-1", "shoulders-1", "back-4", "quads-3", "core-2")},
			{Name: "Full Body C", Weekdays: []int{5}, Exercises: pick("quads-2", "chest-2", "back-5", "biceps-2", "calves-1")},
		},
	},
	hypertrophyFocus,
	strengthFocus,
}

// hypertrophyFocus is a hand-authored four-day program biased toward volume
// work in the 8-15 rep range.
var hypertrophyFocus = models.SplitTemplate{
	Name: "Hypertrophy Focus",
	Workouts: []models.WorkoutTemplate{
		{
			Name:     "Chest & Back",
			Weekdays: []int{1},
			Exercises: []models.ExerciseTemplate{
				{ID: "hf-1", Name: "Incline Dumbbell Press", MuscleGroup: "chest", Sets: 4, Reps: 10, ExerciseType: models.ExerciseStrength},
				{ID: "hf-2", Name: "Weighted Pull-Up", MuscleGroup: "back", Sets: 4, Reps: 8, ExerciseType: models.ExerciseStrength},
				{ID: "hf-3", Name: "Cable Fly", MuscleGroup: "chest", Sets: 3, Reps: 15, Notes: "Slow eccentric", ExerciseType: models.ExerciseStrength},
				{ID: "hf-4", Name: "Chest-Supported Row", MuscleGroup: "back", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
			},
		},
		{
			Name:     "Legs",
			Weekdays: []int{2},
			Exercises: []models.ExerciseTemplate{
				{ID: "hf-5", Name: "Hack Squat", MuscleGroup: "quads", Sets: 4, Reps: 10, ExerciseType: models.ExerciseStrength},
				{ID: "hf-6", Name: "Romanian Deadlift", MuscleGroup: "hamstrings", Sets: 3, Reps: 10, ExerciseType: models.ExerciseStrength},
				{ID: "hf-7", Name: "Leg Extension", MuscleGroup: "quads", Sets: 3, Reps: 15, ExerciseType: models.ExerciseStrength},
				{ID: "hf-8", Name: "Standing Calf Raise", MuscleGroup: "calves", Sets: 4, Reps: 15, ExerciseType: models.ExerciseStrength},
			},
		},
		{
			Name:     "Shoulders & Arms",
			Weekdays: []int{4},
			Exercises: []models.ExerciseTemplate{
				{ID: "hf-9", Name: "Seated Dumbbell Press", MuscleGroup: "shoulders", Sets: 4, Reps: 10, ExerciseType: models.ExerciseStrength},
				{ID: "hf-10", Name: "Lateral Raise", MuscleGroup: "shoulders", Sets: 4, Reps: 15, ExerciseType: models.ExerciseStrength},
				{ID: "hf-11", Name: "Incline Dumbbell Curl", MuscleGroup: "biceps", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
				{ID: "hf-12", Name: "Overhead Cable Extension", MuscleGroup: "triceps", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
			},
		},
		{
			Name:     "Pump & Conditioning",
			Weekdays: []int{6},
			Exercises: []models.ExerciseTemplate{
				{ID: "hf-13", Name: "Leg Press", MuscleGroup: "quads", Sets: 3, Reps: 15, ExerciseType: models.ExerciseStrength},
				{ID: "hf-14", Name: "Seated Cable Row", MuscleGroup: "back", Sets: 3, Reps: 15, ExerciseType: models.ExerciseStrength},
				{ID: "hf-15", Name: "Incline Treadmill Walk", MuscleGroup: "cardio", Sets: 1, Reps: 1, ExerciseType: models.ExerciseCardio, DurationMinutes: 25},
			},
		},
	},
}

// strengthFocus is a hand-authored three-day program built around the
// competition lifts with low-rep top sets.
var strengthFocus = models.SplitTemplate{
	Name: "Strength Focus",
	Workouts: []models.WorkoutTemplate{
		{
			Name:     "Squat Day",
			Weekdays: []int{1},
			Exercises: []models.ExerciseTemplate{
				{ID: "sf-1", Name: "Barbell Back Squat", MuscleGroup: "quads", Sets: 5, Reps: 3, Notes: "Top set at band effort, back-offs -10%", ExerciseType: models.ExerciseStrength},
				{ID: "sf-2", Name: "Front Squat", MuscleGroup: "quads", Sets: 3, Reps: 5, ExerciseType: models.ExerciseStrength},
				{ID: "sf-3", Name: "Lying Leg Curl", MuscleGroup: "hamstrings", Sets: 3, Reps: 10, ExerciseType: models.ExerciseStrength},
			},
		},
		{
			Name:     "Bench Day",
			Weekdays: []int{3},
			Exercises: []models.ExerciseTemplate{
				{ID: "sf-4", Name: "Barbell Bench Press", MuscleGroup: "chest", Sets: 5, Reps: 3, ExerciseType: models.ExerciseStrength},
				{ID: "sf-5", Name: "Close-Grip Bench Press", MuscleGroup: "triceps", Sets: 3, Reps: 6, ExerciseType: models.ExerciseStrength},
				{ID: "sf-6", Name: "Barbell Row", MuscleGroup: "back", Sets: 4, Reps: 6, ExerciseType: models.ExerciseStrength},
			},
		},
		{
			Name:     "Deadlift Day",
			Weekdays: []int{5},
			Exercises: []models.ExerciseTemplate{
				{ID: "sf-7", Name: "Deadlift", MuscleGroup: "back", Sets: 5, Reps: 2, ExerciseType: models.ExerciseStrength},
				{ID: "sf-8", Name: "Overhead Press", MuscleGroup: "shoulders", Sets: 4, Reps: 5, ExerciseType: models.ExerciseStrength},
				{ID: "sf-9", Name: "Hip Thrust", MuscleGroup: "glutes", Sets: 3, Reps: 8, ExerciseType: models.ExerciseStrength},
			},
		},
	},
}

// SplitByName looks up a split template by its display name.
func SplitByName(name string) (models.SplitTemplate, error) {
	for _, s := range Splits {
		if s.Name == name {
			return s, nil
		}
	}
	return models.SplitTemplate{}, fmt.Errorf("unknown split template %q", name)
}

// SplitNames returns the names of all library splits in declaration order.
func SplitNames() []string {
	names := make([]string, len(Splits))
	for i, s := range Splits {
		names[i] = s.Name
	}
	return names
}
