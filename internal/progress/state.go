package progress

// LevelQuantum is the amount of XP that spans one level. Level is a pure
// function of XP with no hysteresis: level = xp/LevelQuantum + 1.
const LevelQuantum = 100

// State is the learner's persistent progress. It is mutated only through
// Model and persisted as a whole after every mutation.
type State struct {
	XP        int             `json:"xp"`
	Level     int             `json:"level"`
	Completed map[string]bool `json:"completed"`
	Unlocked  map[string]bool `json:"unlocked_achievements"`
}

// NewState returns the default state for a fresh learner.
func NewState() *State {
	return &State{
		XP:        0,
		Level:     1,
		Completed: map[string]bool{},
		Unlocked:  map[string]bool{},
	}
}

// LevelForXP computes the level for a given XP total.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/LevelQuantum + 1
}

// Normalize repairs a state loaded from storage so the invariants hold:
// xp >= 0, level derived from xp, sets non-nil. Used on the corrupt-blob
// fallback path, where a damaged document is silently replaced.
func (s *State) Normalize() {
	if s.XP < 0 {
		s.XP = 0
	}
	s.Level = LevelForXP(s.XP)
	if s.Completed == nil {
		s.Completed = map[string]bool{}
	}
	if s.Unlocked == nil {
		s.Unlocked = map[string]bool{}
	}
}

// CompletedCount returns the number of completed lessons.
func (s *State) CompletedCount() int {
	return len(s.Completed)
}

// UnlockedCount returns the number of unlocked achievements.
func (s *State) UnlockedCount() int {
	return len(s.Unlocked)
}

// Clone returns a deep copy, used to hand read-only views to the UI.
func (s *State) Clone() *State {
	c := &State{
		XP:        s.XP,
		Level:     s.Level,
		Completed: make(map[string]bool, len(s.Completed)),
		Unlocked:  make(map[string]bool, len(s.Unlocked)),
	}
	for id := range s.Completed {
		c.Completed[id] = true
	}
	for id := range s.Unlocked {
		c.Unlocked[id] = true
	}
	return c
}
