package models

// ExerciseType distinguishes loaded strength work from timed cardio entries.
type ExerciseType string

const (
	ExerciseStrength ExerciseType = "strength"
	ExerciseCardio   ExerciseType = "cardio"
)

// ExerciseTemplate is an immutable catalog entry used to materialize
// ExerciseInstances at generation time.
type ExerciseTemplate struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	MuscleGroup     string       `json:"muscleGroup"`
	Sets            int          `json:"sets"`
	Reps            int          `json:"reps"`
	Notes           string       `json:"notes,omitempty"`
	ExerciseType    ExerciseType `json:"exerciseType"`
	DurationMinutes int          `json:"durationMinutes,omitempty"`
}

// WorkoutTemplate assigns a set of exercises to one or more weekdays
// (0 = Sunday .. 6 = Saturday, matching time.Weekday).
type WorkoutTemplate struct {
	Name      string             `json:"name"`
	Weekdays  []int              `json:"weekdays"`
	Exercises []ExerciseTemplate `json:"exercises"`
}

// SplitTemplate is a named weekly training split.
type SplitTemplate struct {
	Name     string            `json:"name"`
	Workouts []WorkoutTemplate `json:"workouts"`
}

// IntensityBand is the target effort range (reps in reserve) for one week of
// a mesocycle.
type IntensityBand struct {
	Week      int    `json:"week"`
	MinEffort int    `json:"minEffort"`
	MaxEffort int    `json:"maxEffort"`
	Label     string `json:"label"`
}
