package progress

import (
	"context"
	"fmt"
)

// Saver persists the whole progress state. Implemented by store.Store;
// kept as a one-method interface so the model tests run against a stub.
type Saver interface {
	SaveProgress(ctx context.Context, s *State) error
}

// Model owns the learner state and enforces its invariants: level always
// derives from XP, completed and unlocked sets only grow, and the state
// is flushed to the saver after every mutation.
type Model struct {
	state   *State
	catalog []Achievement
	saver   Saver
}

// NewModel creates a Model around an initial state. A nil state starts
// fresh. A nil saver disables persistence (tests, dry runs).
func NewModel(initial *State, saver Saver) *Model {
	if initial == nil {
		initial = NewState()
	}
	initial.Normalize()
	return &Model{
		state:   initial,
		catalog: Catalog(),
		saver:   saver,
	}
}

// State returns a copy of the current state for rendering.
func (m *Model) State() *State {
	return m.state.Clone()
}

// Completed reports whether the lesson has already been completed. Callers
// must check this before awarding completion XP.
func (m *Model) Completed(lessonID string) bool {
	return m.state.Completed[lessonID]
}

// AddXP adds n XP (n >= 0), recomputes the level, re-evaluates
// achievements, and persists. It returns the IDs of any achievements that
// unlocked as a result, in catalog order.
func (m *Model) AddXP(ctx context.Context, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative XP amount %d", n)
	}
	m.state.XP += n
	m.state.Level = LevelForXP(m.state.XP)
	unlocked := m.evaluateAchievements()
	return unlocked, m.save(ctx)
}

// MarkCompleted records the lesson as completed and awards its XP reward,
// at most once per lesson: completing an already-completed lesson is a
// no-op that awards nothing. Newly unlocked achievement IDs are returned
// in catalog order.
func (m *Model) MarkCompleted(ctx context.Context, lessonID string, xpReward int) (awarded bool, unlocked []string, err error) {
	if m.state.Completed[lessonID] {
		return false, nil, nil
	}
	m.state.Completed[lessonID] = true
	if xpReward > 0 {
		m.state.XP += xpReward
		m.state.Level = LevelForXP(m.state.XP)
	}
	unlocked = m.evaluateAchievements()
	return true, unlocked, m.save(ctx)
}

// EvaluateAchievements re-checks every locked achievement against the
// current state and unlocks those whose predicates are now true. Calling
// it twice without an intervening mutation unlocks nothing the second
// time.
func (m *Model) EvaluateAchievements(ctx context.Context) ([]string, error) {
	unlocked := m.evaluateAchievements()
	if len(unlocked) == 0 {
		return nil, nil
	}
	return unlocked, m.save(ctx)
}

func (m *Model) evaluateAchievements() []string {
	var newly []string
	for _, a := range m.catalog {
		if m.state.Unlocked[a.ID] {
			continue
		}
		if a.Predicate(m.state) {
			m.state.Unlocked[a.ID] = true
			newly = append(newly, a.ID)
		}
	}
	return newly
}

func (m *Model) save(ctx context.Context) error {
	if m.saver == nil {
		return nil
	}
	if err := m.saver.SaveProgress(ctx, m.state); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}
