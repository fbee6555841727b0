package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meltforce/mesoforge/internal/models"
	"github.com/meltforce/mesoforge/internal/plan"
	_ "modernc.org/sqlite"
)

// LocalStore is a single-file SQLite store for offline planning. It holds the
// same documents and history rows as the Postgres store and satisfies the
// same plan.Store interface, so the planner CLI runs the identical engine.
type LocalStore struct {
	db *sql.DB
}

// OpenLocalStore opens (or creates) the SQLite store at dir/mesoforge.db.
func OpenLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "mesoforge.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS mesocycles (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			doc        TEXT NOT NULL,
			version    INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS workout_history (
			id                  TEXT PRIMARY KEY,
			mesocycle_id        TEXT NOT NULL,
			workout_id          TEXT NOT NULL,
			name                TEXT NOT NULL,
			week_number         INTEGER NOT NULL,
			workout_date        TIMESTAMP NOT NULL,
			completed_at        TIMESTAMP NOT NULL,
			difficulty          TEXT NOT NULL DEFAULT '',
			exercises_completed INTEGER NOT NULL DEFAULT 0,
			sets_completed      INTEGER NOT NULL DEFAULT 0
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating local tables: %w", err)
		}
	}
	return &LocalStore{db: db}, nil
}

// SaveMesocycle upserts the document, bumping its version. Same last-write-
// wins semantics as the Postgres store.
func (s *LocalStore) SaveMesocycle(ctx context.Context, m *models.Mesocycle) error {
	m.Version++
	doc, err := json.Marshal(m)
	if err != nil {
		m.Version--
		return fmt.Errorf("encoding mesocycle %s: %w", m.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO mesocycles (id, name, doc, version, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, m.ID, m.Name, string(doc), m.Version)
	if err != nil {
		m.Version--
		return fmt.Errorf("saving mesocycle %s: %w", m.ID, err)
	}
	return nil
}

// LoadMesocycle reads a document by ID.
func (s *LocalStore) LoadMesocycle(ctx context.Context, id string) (*models.Mesocycle, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM mesocycles WHERE id = ?`, id,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mesocycle %s: %w", id, plan.ErrMesocycleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying mesocycle %s: %w", id, err)
	}
	var m models.Mesocycle
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		return nil, fmt.Errorf("decoding mesocycle %s: %w", id, err)
	}
	return &m, nil
}

// AppendHistory inserts one completed-workout row.
func (s *LocalStore) AppendHistory(ctx context.Context, e models.WorkoutHistoryEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workout_history (id, mesocycle_id, workout_id, name, week_number,
			workout_date, completed_at, difficulty, exercises_completed, sets_completed)
		VALUES (?,?,?,?,?,?,?,?,?,?)
	`, e.ID, e.MesocycleID, e.WorkoutID, e.Name, e.WeekNumber,
		e.WorkoutDate, e.CompletedAt, e.Difficulty, e.ExercisesCompleted, e.SetsCompleted)
	if err != nil {
		return fmt.Errorf("inserting workout history: %w", err)
	}
	return nil
}

// ListMesocycles returns summaries of stored documents, newest first.
func (s *LocalStore) ListMesocycles(ctx context.Context) ([]MesocycleSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, version, updated_at FROM mesocycles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing mesocycles: %w", err)
	}
	defer rows.Close()

	var out []MesocycleSummary
	for rows.Next() {
		var m MesocycleSummary
		if err := rows.Scan(&m.ID, &m.Name, &m.Version, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning mesocycle summary: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Close closes the store.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Compile-time checks: both stores satisfy the engine's Store interface.
var (
	_ plan.Store = (*DB)(nil)
	_ plan.Store = (*LocalStore)(nil)
)
