package progress

import "testing"

func TestHintTracker_RevealsEveryTwoFails(t *testing.T) {
	tr := NewHintTracker()
	hints := []string{"h0", "h1", "h2"}

	// 0 fails: first hint slot, index 0.
	hint, ok, exhausted := tr.AvailableHint("les", hints)
	if !ok || exhausted || hint != "h0" {
		t.Errorf("0 fails: got (%q, %v, %v), want (h0, true, false)", hint, ok, exhausted)
	}

	tr.RecordFail("les")
	tr.RecordFail("les")
	hint, _, _ = tr.AvailableHint("les", hints)
	if hint != "h1" {
		t.Errorf("2 fails: hint = %q, want h1", hint)
	}

	tr.RecordFail("les")
	hint, _, _ = tr.AvailableHint("les", hints)
	if hint != "h1" {
		t.Errorf("3 fails: hint = %q, want h1 (floor division)", hint)
	}

	tr.RecordFail("les")
	hint, _, exhausted = tr.AvailableHint("les", hints)
	if hint != "h2" || exhausted {
		t.Errorf("4 fails: got (%q, exhausted=%v), want (h2, false)", hint, exhausted)
	}
}

func TestHintTracker_ClampsPastLastHint(t *testing.T) {
	tr := NewHintTracker()
	hints := []string{"only"}

	for range 10 {
		tr.RecordFail("les")
	}
	hint, ok, exhausted := tr.AvailableHint("les", hints)
	if !ok || hint != "only" || !exhausted {
		t.Errorf("got (%q, %v, %v), want (only, true, true)", hint, ok, exhausted)
	}
}

func TestHintTracker_NoHints(t *testing.T) {
	tr := NewHintTracker()
	if _, ok, _ := tr.AvailableHint("les", nil); ok {
		t.Error("lesson without hints must report ok=false")
	}
}

func TestHintTracker_RequestSharesCounter(t *testing.T) {
	tr := NewHintTracker()
	hints := []string{"h0", "h1"}

	tr.RecordFail("les")
	// Manual request increments the same counter: 1 fail + 1 request = 2.
	hint, ok, _ := tr.RequestHint("les", hints)
	if !ok || hint != "h1" {
		t.Errorf("got %q, want h1 after shared counter reaches 2", hint)
	}
	if tr.Attempts("les") != 2 {
		t.Errorf("attempts = %d, want 2", tr.Attempts("les"))
	}
}

func TestHintTracker_SurvivesLessonSwitch(t *testing.T) {
	tr := NewHintTracker()
	tr.RecordFail("a")
	tr.RecordFail("a")
	tr.RecordFail("b")

	if tr.Attempts("a") != 2 {
		t.Errorf("lesson a attempts = %d, want 2", tr.Attempts("a"))
	}
	if tr.Attempts("b") != 1 {
		t.Errorf("lesson b attempts = %d, want 1", tr.Attempts("b"))
	}
}
