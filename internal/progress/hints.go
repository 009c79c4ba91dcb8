package progress

// HintTracker counts failed grading attempts per lesson and derives how
// many hints are revealed. The counter is session-scoped: it survives
// lesson switches but is lost on exit, and it is never reset.
//
// Reveal rule: one hint becomes available for every two attempts
// (index = attempts/2, floor division), clamped to the last hint. A
// manual hint request consumes an attempt increment on the same counter.
type HintTracker struct {
	attempts map[string]int
}

// NewHintTracker creates an empty tracker.
func NewHintTracker() *HintTracker {
	return &HintTracker{attempts: map[string]int{}}
}

// RecordFail increments the attempt counter for a failed grading attempt
// and returns the new count. Exactly one increment per attempt.
func (t *HintTracker) RecordFail(lessonID string) int {
	t.attempts[lessonID]++
	return t.attempts[lessonID]
}

// Attempts returns the current attempt count for the lesson.
func (t *HintTracker) Attempts(lessonID string) int {
	return t.attempts[lessonID]
}

// RequestHint handles an explicit hint request: it increments the shared
// attempt counter, then returns the hint at the derived index. ok is
// false when the lesson has no hints at all; when the learner has walked
// past the last hint the last one is returned with exhausted=true so the
// UI can say "no more hints" instead of erroring.
func (t *HintTracker) RequestHint(lessonID string, hints []string) (hint string, ok bool, exhausted bool) {
	t.attempts[lessonID]++
	return t.hintAt(lessonID, hints)
}

// AvailableHint returns the hint unlocked by failed attempts alone,
// without consuming an increment.
func (t *HintTracker) AvailableHint(lessonID string, hints []string) (hint string, ok bool, exhausted bool) {
	return t.hintAt(lessonID, hints)
}

func (t *HintTracker) hintAt(lessonID string, hints []string) (string, bool, bool) {
	if len(hints) == 0 {
		return "", false, true
	}
	idx := t.attempts[lessonID] / 2
	if idx < 0 {
		idx = 0
	}
	exhausted := false
	if idx > len(hints)-1 {
		idx = len(hints) - 1
		exhausted = true
	}
	return hints[idx], true, exhausted
}
