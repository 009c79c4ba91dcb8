package progress

// Achievement is a named milestone unlocked when its predicate over the
// learner state becomes true. Predicates are pure functions of State only;
// display text is data and never drives logic.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Predicate   func(*State) bool
}

// Catalog returns the static achievement catalog in unlock-evaluation
// order. Achievements are evaluated uniformly after every state mutation;
// all newly-true predicates unlock together.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first_steps",
			Title:       "First Steps",
			Description: "Complete your first lesson",
			Predicate:   func(s *State) bool { return s.CompletedCount() >= 1 },
		},
		{
			ID:          "level_up",
			Title:       "Level Up",
			Description: "Reach level 2",
			Predicate:   func(s *State) bool { return s.Level >= 2 },
		},
		{
			ID:          "apprentice",
			Title:       "Apprentice",
			Description: "Complete 5 lessons",
			Predicate:   func(s *State) bool { return s.CompletedCount() >= 5 },
		},
		{
			ID:          "journeyman",
			Title:       "Journeyman",
			Description: "Complete 10 lessons",
			Predicate:   func(s *State) bool { return s.CompletedCount() >= 10 },
		},
		{
			ID:          "rising_star",
			Title:       "Rising Star",
			Description: "Earn 500 XP",
			Predicate:   func(s *State) bool { return s.XP >= 500 },
		},
		{
			ID:          "veteran",
			Title:       "Veteran",
			Description: "Reach level 10",
			Predicate:   func(s *State) bool { return s.Level >= 10 },
		},
	}
}

// AchievementByID looks up a catalog entry for display purposes.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Catalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
