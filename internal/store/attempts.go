package store

import (
	"context"
	"fmt"
	"time"
)

// Attempt is one recorded engine interaction: a grading attempt or a
// trace playback run.
type Attempt struct {
	SessionID string
	LessonID  string
	Kind      string // "grade" or "trace"
	Passed    bool
	Detail    string
}

// Summary aggregates the attempt log for the stats command.
type Summary struct {
	Attempts int
	Passes   int
	Lessons  map[string]LessonStats
}

// LessonStats holds per-lesson attempt counts.
type LessonStats struct {
	Attempts int
	Passes   int
	LastTS   time.Time
}

// RecordAttempt appends one attempt to the log. Logging is best-effort
// bookkeeping; callers may ignore the error.
func (s *Store) RecordAttempt(ctx context.Context, a Attempt) error {
	passed := 0
	if a.Passed {
		passed = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts(session_id, lesson_id, kind, passed, detail) VALUES(?,?,?,?,?)`,
		a.SessionID, a.LessonID, a.Kind, passed, a.Detail,
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// GetSummary aggregates the attempt log.
func (s *Store) GetSummary(ctx context.Context) (Summary, error) {
	sum := Summary{Lessons: map[string]LessonStats{}}

	rows, err := s.db.QueryContext(ctx,
		`SELECT lesson_id, passed, created_ts FROM attempts WHERE kind = 'grade' ORDER BY id`,
	)
	if err != nil {
		return sum, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lessonID, ts string
		var passed int
		if err := rows.Scan(&lessonID, &passed, &ts); err != nil {
			return sum, fmt.Errorf("scan attempt: %w", err)
		}
		ls := sum.Lessons[lessonID]
		ls.Attempts++
		sum.Attempts++
		if passed != 0 {
			ls.Passes++
			sum.Passes++
		}
		if t, err := time.Parse("2006-01-02 15:04:05", ts); err == nil {
			ls.LastTS = t
		}
		sum.Lessons[lessonID] = ls
	}
	return sum, rows.Err()
}
