package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/meltforce/mesoforge/internal/models"
)

// AppendHistory inserts one completed-workout row. Re-completing the same
// workout inserts a new row under a fresh ID; history is an append-only log.
func (db *DB) AppendHistory(ctx context.Context, e models.WorkoutHistoryEntry) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO workout_history (id, mesocycle_id, workout_id, name, week_number,
			workout_date, completed_at, difficulty, exercises_completed, sets_completed)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, e.ID, e.MesocycleID, e.WorkoutID, e.Name, e.WeekNumber,
		e.WorkoutDate, e.CompletedAt, e.Difficulty, e.ExercisesCompleted, e.SetsCompleted)
	if err != nil {
		return fmt.Errorf("inserting workout history: %w", err)
	}
	return nil
}

// QueryHistory retrieves history rows for a mesocycle, most recent first.
func (db *DB) QueryHistory(ctx context.Context, mesocycleID string, limit int) ([]models.WorkoutHistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id, mesocycle_id, workout_id, name, week_number,
			workout_date, completed_at, difficulty, exercises_completed, sets_completed
		FROM workout_history
		WHERE mesocycle_id = $1
		ORDER BY completed_at DESC
		LIMIT $2
	`, mesocycleID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying workout history: %w", err)
	}
	defer rows.Close()

	var out []models.WorkoutHistoryEntry
	for rows.Next() {
		var e models.WorkoutHistoryEntry
		if err := rows.Scan(&e.ID, &e.MesocycleID, &e.WorkoutID, &e.Name, &e.WeekNumber,
			&e.WorkoutDate, &e.CompletedAt, &e.Difficulty, &e.ExercisesCompleted, &e.SetsCompleted); err != nil {
			return nil, fmt.Errorf("scanning workout history: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// MesocycleStats summarizes completion progress for one mesocycle.
type MesocycleStats struct {
	MesocycleID       string      `json:"mesocycleId"`
	WorkoutsCompleted int64       `json:"workoutsCompleted"`
	SetsCompleted     int64       `json:"setsCompleted"`
	LastCompletedAt   *time.Time  `json:"lastCompletedAt"`
	ByWeek            []WeekStats `json:"byWeek"`
}

// WeekStats is the per-week slice of MesocycleStats.
type WeekStats struct {
	Week          int   `json:"week"`
	Workouts      int64 `json:"workouts"`
	SetsCompleted int64 `json:"setsCompleted"`
}

// GetMesocycleStats aggregates the history log for one mesocycle.
func (db *DB) GetMesocycleStats(ctx context.Context, mesocycleID string) (*MesocycleStats, error) {
	stats := &MesocycleStats{MesocycleID: mesocycleID}

	err := db.Pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(sets_completed), 0), MAX(completed_at)
		FROM workout_history WHERE mesocycle_id = $1
	`, mesocycleID).Scan(&stats.WorkoutsCompleted, &stats.SetsCompleted, &stats.LastCompletedAt)
	if err != nil {
		return nil, fmt.Errorf("aggregating history: %w", err)
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT week_number, COUNT(*), COALESCE(SUM(sets_completed), 0)
		FROM workout_history
		WHERE mesocycle_id = $1
		GROUP BY week_number
		ORDER BY week_number
	`, mesocycleID)
	if err != nil {
		return nil, fmt.Errorf("aggregating history by week: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w WeekStats
		if err := rows.Scan(&w.Week, &w.Workouts, &w.SetsCompleted); err != nil {
			return nil, fmt.Errorf("scanning week stats: %w", err)
		}
		stats.ByWeek = append(stats.ByWeek, w)
	}
	return stats, rows.Err()
}
