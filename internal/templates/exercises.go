package templates

import (
	"sort"

	"github.com/meltforce/mesoforge/internal/models"
)

// Catalog is the static exercise library, keyed by muscle group. IDs are
// stable — generated ExerciseInstance IDs embed them, so renumbering a
// catalog entry would break cross-week identity matching for existing plans.
var Catalog = map[string][]models.ExerciseTemplate{
	"chest": {
		{ID: "chest-1", Name: "Barbell Bench Press", MuscleGroup: "chest", Sets: 3, Reps: 8, ExerciseType: models.ExerciseStrength},
		{ID: "chest-2", Name: "Incline Dumbbell Press", MuscleGroup: "chest", Sets: 3, Reps: 10, ExerciseType: models.ExerciseStrength},
		{ID: "chest-3", Name: "Cable Fly", MuscleGroup: "chest", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
		{ID: "chest-4", Name: "Dips", MuscleGroup: "chest", Sets: 3, Reps: 10, Notes: "Lean forward for chest emphasis", ExerciseType: models.ExerciseStrength},
	},
	"back": {
		{ID: "back-1", Name: "Deadlift", MuscleGroup: "back", Sets: 3, Reps: 5, ExerciseType: models.ExerciseStrength},
		{ID: "back-2", Name: "Pull-Up", MuscleGroup: "back", Sets: 3, Reps: 8, ExerciseType: models.ExerciseStrength},
		{ID: "back-3", Name: "Barbell Row", MuscleGroup: "back", Sets: 3, Reps: 8, ExerciseType: models.ExerciseStrength},
		{ID: "back-4", Name: "Lat Pulldown", MuscleGroup: "back", Sets: 3, Reps: 10, ExerciseType: models.ExerciseStrength},
		{ID: "back-5", Name: "Seated Cable Row", MuscleGroup: "back", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
	},
	"shoulders": {
		{ID: "shoulders-1", Name: "Overhead Press", MuscleGroup: "shoulders", Sets: 3, Reps: 8, ExerciseType: models.ExerciseStrength},
		{ID: "shoulders-2", Name: "Lateral Raise", MuscleGroup: "shoulders", Sets: 3, Reps: 15, ExerciseType: models.ExerciseStrength},
		{ID: "shoulders-3", Name: "Rear Delt Fly", MuscleGroup: "shoulders", Sets: 3, Reps: 15, ExerciseType: models.ExerciseStrength},
	},
	"quads": {
		{ID: "quads-1", Name: "Barbell Back Squat", MuscleGroup: "quads", Sets: 3, Reps: 6, ExerciseType: models.ExerciseStrength},
		{ID: "quads-2", Name: "Leg Press", MuscleGroup: "quads", Sets: 3, Reps: 10, ExerciseType: models.ExerciseStrength},
		{ID: "quads-3", Name: "Bulgarian Split Squat", MuscleGroup: "quads", Sets: 3, Reps: 10, Notes: "Per leg", ExerciseType: models.ExerciseStrength},
		{ID: "quads-4", Name: "Leg Extension", MuscleGroup: "quads", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
	},
	"hamstrings": {
		{ID: "hamstrings-1", Name: "Romanian Deadlift", MuscleGroup: "hamstrings", Sets: 3, Reps: 8, ExerciseType: models.ExerciseStrength},
		{ID: "hamstrings-2", Name: "Lying Leg Curl", MuscleGroup: "hamstrings", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
	},
	"glutes": {
		{ID: "glutes-1", Name: "Hip Thrust", MuscleGroup: "glutes", Sets: 3, Reps: 10, ExerciseType: models.ExerciseStrength},
	},
	"biceps": {
		{ID: "biceps-1", Name: "Barbell Curl", MuscleGroup: "biceps", Sets: 3, Reps: 10, ExerciseType: models.ExerciseStrength},
		{ID: "biceps-2", Name: "Incline Dumbbell Curl", MuscleGroup: "biceps", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
	},
	"triceps": {
		{ID: "triceps-1", Name: "Close-Grip Bench Press", MuscleGroup: "triceps", Sets: 3, Reps: 8, ExerciseType: models.ExerciseStrength},
		{ID: "triceps-2", Name: "Cable Pushdown", MuscleGroup: "triceps", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
	},
	"calves": {
		{ID: "calves-1", Name: "Standing Calf Raise", MuscleGroup: "calves", Sets: 4, Reps: 12, ExerciseType: models.ExerciseStrength},
	},
	"core": {
		{ID: "core-1", Name: "Hanging Leg Raise", MuscleGroup: "core", Sets: 3, Reps: 12, ExerciseType: models.ExerciseStrength},
		{ID: "core-2", Name: "Plank", MuscleGroup: "core", Sets: 3, Reps: 1, Notes: "60s hold", ExerciseType: models.ExerciseStrength},
	},
	"cardio": {
		{ID: "cardio-1", Name: "Incline Treadmill Walk", MuscleGroup: "cardio", Sets: 1, Reps: 1, ExerciseType: models.ExerciseCardio, DurationMinutes: 20},
		{ID: "cardio-2", Name: "Stationary Bike", MuscleGroup: "cardio", Sets: 1, Reps: 1, ExerciseType: models.ExerciseCardio, DurationMinutes: 25},
	},
}

// MuscleGroups returns the catalog's muscle groups in stable sorted order.
func MuscleGroups() []string {
	groups := make([]string, 0, len(Catalog))
	for g := range Catalog {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// ByMuscleGroup returns the catalog entries for one muscle group.
func ByMuscleGroup(group string) []models.ExerciseTemplate {
	return Catalog[group]
}
