package progress

import (
	"context"
	"testing"
)

// stubSaver records every persisted state.
type stubSaver struct {
	saves int
	last  *State
	err   error
}

func (s *stubSaver) SaveProgress(_ context.Context, st *State) error {
	if s.err != nil {
		return s.err
	}
	s.saves++
	s.last = st.Clone()
	return nil
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{105, 2},
		{250, 3},
		{1000, 11},
		{-5, 1},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestAddXP_LevelAlwaysDerivedFromXP(t *testing.T) {
	m := NewModel(nil, nil)
	ctx := context.Background()

	total := 0
	for _, n := range []int{0, 10, 45, 60, 100, 7, 333} {
		if _, err := m.AddXP(ctx, n); err != nil {
			t.Fatalf("AddXP(%d): %v", n, err)
		}
		total += n
		st := m.State()
		if st.XP != total {
			t.Errorf("XP = %d, want %d", st.XP, total)
		}
		if want := total/LevelQuantum + 1; st.Level != want {
			t.Errorf("after %d total XP: Level = %d, want %d", total, st.Level, want)
		}
	}
}

func TestAddXP_NegativeRejected(t *testing.T) {
	m := NewModel(nil, nil)
	if _, err := m.AddXP(context.Background(), -1); err == nil {
		t.Fatal("expected error for negative XP")
	}
	if st := m.State(); st.XP != 0 {
		t.Errorf("XP = %d after rejected call, want 0", st.XP)
	}
}

func TestAddXP_LevelUpScenario(t *testing.T) {
	m := NewModel(nil, nil)
	ctx := context.Background()

	unlocked, err := m.AddXP(ctx, 60)
	if err != nil {
		t.Fatalf("AddXP(60): %v", err)
	}
	st := m.State()
	if st.XP != 60 || st.Level != 1 {
		t.Errorf("after 60 XP: xp=%d level=%d, want xp=60 level=1", st.XP, st.Level)
	}
	for _, id := range unlocked {
		if id == "level_up" {
			t.Error("level_up unlocked too early")
		}
	}

	unlocked, err = m.AddXP(ctx, 45)
	if err != nil {
		t.Fatalf("AddXP(45): %v", err)
	}
	st = m.State()
	if st.XP != 105 || st.Level != 2 {
		t.Errorf("after 105 XP: xp=%d level=%d, want xp=105 level=2", st.XP, st.Level)
	}
	if !containsID(unlocked, "level_up") {
		t.Errorf("unlocked = %v, want level_up included", unlocked)
	}
}

func TestMarkCompleted_AwardsXPOnce(t *testing.T) {
	saver := &stubSaver{}
	m := NewModel(nil, saver)
	ctx := context.Background()

	awarded, _, err := m.MarkCompleted(ctx, "loops-1", 30)
	if err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	if !awarded {
		t.Error("first completion should award")
	}
	if st := m.State(); st.XP != 30 {
		t.Errorf("XP = %d, want 30", st.XP)
	}

	awarded, unlocked, err := m.MarkCompleted(ctx, "loops-1", 30)
	if err != nil {
		t.Fatalf("repeat MarkCompleted: %v", err)
	}
	if awarded {
		t.Error("repeat completion must not award")
	}
	if len(unlocked) != 0 {
		t.Errorf("repeat completion unlocked %v, want nothing", unlocked)
	}
	if st := m.State(); st.XP != 30 {
		t.Errorf("XP = %d after repeat, want 30", st.XP)
	}
}

func TestMarkCompleted_ApprenticeOnFifth(t *testing.T) {
	m := NewModel(nil, nil)
	ctx := context.Background()

	ids := []string{"a", "b", "c", "d", "e"}
	for i, id := range ids {
		_, unlocked, err := m.MarkCompleted(ctx, id, 10)
		if err != nil {
			t.Fatalf("MarkCompleted(%s): %v", id, err)
		}
		got := containsID(unlocked, "apprentice")
		want := i == 4
		if got != want {
			t.Errorf("completion %d: apprentice unlocked = %v, want %v", i+1, got, want)
		}
	}
}

func TestEvaluateAchievements_Idempotent(t *testing.T) {
	m := NewModel(nil, nil)
	ctx := context.Background()

	if _, err := m.AddXP(ctx, 150); err != nil {
		t.Fatalf("AddXP: %v", err)
	}

	again, err := m.EvaluateAchievements(ctx)
	if err != nil {
		t.Fatalf("EvaluateAchievements: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second evaluation unlocked %v, want nothing", again)
	}
}

func TestModel_PersistsAfterEveryMutation(t *testing.T) {
	saver := &stubSaver{}
	m := NewModel(nil, saver)
	ctx := context.Background()

	if _, err := m.AddXP(ctx, 10); err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if _, _, err := m.MarkCompleted(ctx, "x", 5); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	if saver.saves != 2 {
		t.Errorf("saves = %d, want 2", saver.saves)
	}
	if saver.last.XP != 15 {
		t.Errorf("persisted XP = %d, want 15", saver.last.XP)
	}
	if saver.last.Level != LevelForXP(saver.last.XP) {
		t.Errorf("persisted level %d does not match xp %d", saver.last.Level, saver.last.XP)
	}
}

func TestNewModel_NormalizesLoadedState(t *testing.T) {
	loaded := &State{XP: 230, Level: 1, Completed: nil, Unlocked: nil}
	m := NewModel(loaded, nil)
	st := m.State()
	if st.Level != 3 {
		t.Errorf("Level = %d, want 3 (derived from 230 XP)", st.Level)
	}
	if st.Completed == nil || st.Unlocked == nil {
		t.Error("sets must be non-nil after normalization")
	}
}

func containsID(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
