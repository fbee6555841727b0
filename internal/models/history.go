package models

import "time"

// WorkoutHistoryEntry is one completed workout appended to the history log
// when a session is marked complete. Rows are flat on purpose: history is a
// query surface, not part of the mesocycle document.
type WorkoutHistoryEntry struct {
	ID                 string    `json:"id"`
	MesocycleID        string    `json:"mesocycleId"`
	WorkoutID          string    `json:"workoutId"`
	Name               string    `json:"name"`
	WeekNumber         int       `json:"weekNumber"`
	WorkoutDate        time.Time `json:"workoutDate"`
	CompletedAt        time.Time `json:"completedAt"`
	Difficulty         string    `json:"difficulty"`
	ExercisesCompleted int       `json:"exercisesCompleted"`
	SetsCompleted      int       `json:"setsCompleted"`
}
