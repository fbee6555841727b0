package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/mesoforge/internal/models"
	"github.com/meltforce/mesoforge/internal/plan"
)

// SaveMesocycle upserts the whole document as JSONB, bumping the version
// counter on every write.
//
// Writes are last-write-wins: the version is recorded but not compared, so
// two concurrent completions of the same mesocycle can lose one update.
// Single-writer is the operating assumption; see plan.Store.
func (db *DB) SaveMesocycle(ctx context.Context, m *models.Mesocycle) error {
	m.Version++
	doc, err := json.Marshal(m)
	if err != nil {
		m.Version--
		return fmt.Errorf("encoding mesocycle %s: %w", m.ID, err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO mesocycles (id, name, doc, version, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE
			SET name = $2, doc = $3, version = $4, updated_at = NOW()
	`, m.ID, m.Name, doc, m.Version)
	if err != nil {
		m.Version--
		return fmt.Errorf("saving mesocycle %s: %w", m.ID, err)
	}
	return nil
}

// LoadMesocycle reads a document by ID.
func (db *DB) LoadMesocycle(ctx context.Context, id string) (*models.Mesocycle, error) {
	var doc []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT doc FROM mesocycles WHERE id = $1`, id,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("mesocycle %s: %w", id, plan.ErrMesocycleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying mesocycle %s: %w", id, err)
	}
	var m models.Mesocycle
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("decoding mesocycle %s: %w", id, err)
	}
	return &m, nil
}

// DeleteMesocycle removes a document and its history rows.
func (db *DB) DeleteMesocycle(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM mesocycles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting mesocycle %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mesocycle %s: %w", id, plan.ErrMesocycleNotFound)
	}
	return nil
}

// MesocycleSummary is the list-view projection of a stored document.
type MesocycleSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListMesocycles returns summaries of all stored documents, newest first.
func (db *DB) ListMesocycles(ctx context.Context) ([]MesocycleSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, version, updated_at FROM mesocycles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing mesocycles: %w", err)
	}
	defer rows.Close()

	var out []MesocycleSummary
	for rows.Next() {
		var s MesocycleSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Version, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning mesocycle summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
