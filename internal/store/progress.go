package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pydojo/pydojo/internal/progress"
)

// SaveProgress writes the whole progress state as one JSON document under
// the fixed key. Called after every mutation; the write replaces the
// previous document.
func (s *Store) SaveProgress(ctx context.Context, st *progress.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO progress(id, data, updated_ts) VALUES(1, ?, datetime('now'))
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_ts = excluded.updated_ts`,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// LoadProgress reads the progress document. An absent or corrupt document
// falls back to the default state silently; the damaged blob is simply
// overwritten on the next save.
func (s *Store) LoadProgress(ctx context.Context) (*progress.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM progress WHERE id = 1`).Scan(&data)
	if err != nil {
		// sql.ErrNoRows and real query errors both take the fresh-state
		// path: there is nothing worth recovering in either case.
		return progress.NewState(), nil
	}

	var st progress.State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return progress.NewState(), nil
	}
	st.Normalize()
	return &st, nil
}
