package lessons

// Lesson is one unit of instructional content. Lessons are immutable
// after load and owned by the Catalog.
type Lesson struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Goal        string   `json:"goal"`
	StarterCode string   `json:"starter_code"`
	Checker     Checker  `json:"checker"`
	Hints       []string `json:"hints"`
	XPReward    int      `json:"xp_reward"`
}

// Checker is the lesson-supplied grading code. EntryPoint names the
// function the engine invokes with the captured stdout text; its return
// value's truthiness is the verdict.
type Checker struct {
	Source     string `json:"source"`
	EntryPoint string `json:"entry_point"`
}

// Pack is a lesson feed: an ordered list of lessons loaded once at
// startup.
type Pack struct {
	Name    string   `json:"name"`
	Lessons []Lesson `json:"lessons"`
}

// DefaultEntryPoint is assumed when a checker omits entry_point.
const DefaultEntryPoint = "check"
