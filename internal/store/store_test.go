package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pydojo/pydojo/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := progress.NewState()
	st.XP = 105
	st.Level = progress.LevelForXP(st.XP)
	st.Completed["hello-world"] = true
	st.Unlocked["level_up"] = true

	if err := s.SaveProgress(ctx, st); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	got, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if got.XP != 105 || got.Level != 2 {
		t.Errorf("got xp=%d level=%d, want xp=105 level=2", got.XP, got.Level)
	}
	if !got.Completed["hello-world"] {
		t.Error("completed set lost")
	}
	if !got.Unlocked["level_up"] {
		t.Error("unlocked set lost")
	}
}

func TestLoadProgress_EmptyStoreFallsBack(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LoadProgress(context.Background())
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if got.XP != 0 || got.Level != 1 {
		t.Errorf("fresh state xp=%d level=%d, want 0/1", got.XP, got.Level)
	}
	if got.Completed == nil || got.Unlocked == nil {
		t.Error("fresh state sets must be non-nil")
	}
}

func TestLoadProgress_CorruptBlobFallsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx,
		`INSERT INTO progress(id, data) VALUES(1, 'not json at all')`)
	if err != nil {
		t.Fatalf("inject corrupt blob: %v", err)
	}

	got, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if got.XP != 0 || got.Level != 1 {
		t.Errorf("corrupt fallback xp=%d level=%d, want 0/1", got.XP, got.Level)
	}

	// The corrupt blob is overwritten by the next save, not reported.
	if err := s.SaveProgress(ctx, got); err != nil {
		t.Fatalf("SaveProgress over corrupt blob: %v", err)
	}
	again, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("LoadProgress after repair: %v", err)
	}
	if again.Level != 1 {
		t.Errorf("repaired state level = %d, want 1", again.Level)
	}
}

func TestLoadProgress_NegativeXPNormalized(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx,
		`INSERT INTO progress(id, data) VALUES(1, '{"xp": -40, "level": 0}')`)
	if err != nil {
		t.Fatalf("inject state: %v", err)
	}

	got, err := s.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if got.XP < 0 {
		t.Errorf("xp = %d, want >= 0", got.XP)
	}
	if got.Level < 1 {
		t.Errorf("level = %d, want >= 1", got.Level)
	}
}

func TestAttemptLogSummary(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	attempts := []Attempt{
		{SessionID: "s1", LessonID: "a", Kind: "grade", Passed: false},
		{SessionID: "s1", LessonID: "a", Kind: "grade", Passed: true},
		{SessionID: "s1", LessonID: "b", Kind: "grade", Passed: true},
		{SessionID: "s1", LessonID: "a", Kind: "trace", Passed: true},
	}
	for _, a := range attempts {
		if err := s.RecordAttempt(ctx, a); err != nil {
			t.Fatalf("RecordAttempt: %v", err)
		}
	}

	sum, err := s.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if sum.Attempts != 3 {
		t.Errorf("grade attempts = %d, want 3 (trace excluded)", sum.Attempts)
	}
	if sum.Passes != 2 {
		t.Errorf("passes = %d, want 2", sum.Passes)
	}
	if sum.Lessons["a"].Attempts != 2 || sum.Lessons["a"].Passes != 1 {
		t.Errorf("lesson a stats = %+v", sum.Lessons["a"])
	}
}
