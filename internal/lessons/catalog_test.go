package lessons

import (
	"errors"
	"testing"
)

const validPack = `{
  "name": "Test Pack",
  "lessons": [
    {
      "id": "one",
      "title": "One",
      "goal": "first",
      "starter_code": "",
      "checker": {"source": "def check(output):\n    return True\n"},
      "hints": ["h"],
      "xp_reward": 10
    },
    {
      "id": "two",
      "title": "Two",
      "goal": "second",
      "starter_code": "x = 1\n",
      "checker": {"source": "def verify(output):\n    return True\n", "entry_point": "verify"},
      "hints": [],
      "xp_reward": 20
    }
  ]
}`

func TestParse_Valid(t *testing.T) {
	c, err := Parse([]byte(validPack))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Name() != "Test Pack" {
		t.Errorf("Name = %q, want Test Pack", c.Name())
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.Current().ID != "one" {
		t.Errorf("initial cursor on %q, want one", c.Current().ID)
	}
}

func TestParse_DefaultEntryPoint(t *testing.T) {
	c, err := Parse([]byte(validPack))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	one, _ := c.ByID("one")
	if one.Checker.EntryPoint != DefaultEntryPoint {
		t.Errorf("entry point = %q, want %q", one.Checker.EntryPoint, DefaultEntryPoint)
	}
	two, _ := c.ByID("two")
	if two.Checker.EntryPoint != "verify" {
		t.Errorf("entry point = %q, want verify", two.Checker.EntryPoint)
	}
}

func TestParse_MalformedFeed(t *testing.T) {
	cases := map[string]string{
		"not json":          `{"name": "x", "lessons": [`,
		"missing lessons":   `{"name": "x"}`,
		"empty lessons":     `{"name": "x", "lessons": []}`,
		"negative xp":       `{"name": "x", "lessons": [{"id": "a", "title": "A", "starter_code": "", "checker": {"source": "s"}, "xp_reward": -1}]}`,
		"bad id":            `{"name": "x", "lessons": [{"id": "BAD ID", "title": "A", "starter_code": "", "checker": {"source": "s"}, "xp_reward": 0}]}`,
		"missing checker":   `{"name": "x", "lessons": [{"id": "a", "title": "A", "starter_code": "", "xp_reward": 0}]}`,
		"unknown top field": `{"name": "x", "extra": 1, "lessons": [{"id": "a", "title": "A", "starter_code": "", "checker": {"source": "s"}, "xp_reward": 0}]}`,
	}
	for name, raw := range cases {
		if _, err := Parse([]byte(raw)); !errors.Is(err, ErrMalformedFeed) {
			t.Errorf("%s: err = %v, want ErrMalformedFeed", name, err)
		}
	}
}

func TestParse_DuplicateID(t *testing.T) {
	raw := `{"name": "x", "lessons": [
      {"id": "a", "title": "A", "starter_code": "", "checker": {"source": "s"}, "xp_reward": 0},
      {"id": "a", "title": "B", "starter_code": "", "checker": {"source": "s"}, "xp_reward": 0}
    ]}`
	if _, err := Parse([]byte(raw)); !errors.Is(err, ErrMalformedFeed) {
		t.Errorf("err = %v, want ErrMalformedFeed for duplicate id", err)
	}
}

func TestCatalog_Cursor(t *testing.T) {
	c, err := Parse([]byte(validPack))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	c.Select(1)
	if c.Current().ID != "two" {
		t.Errorf("after Select(1): %q, want two", c.Current().ID)
	}
	c.Select(99)
	if c.Current().ID != "two" {
		t.Errorf("Select past end should clamp, got %q", c.Current().ID)
	}
	c.Select(-3)
	if c.Current().ID != "one" {
		t.Errorf("Select before start should clamp, got %q", c.Current().ID)
	}
	if !c.SelectID("two") || c.Cursor() != 1 {
		t.Error("SelectID(two) failed")
	}
	if c.SelectID("nope") {
		t.Error("SelectID of unknown lesson must return false")
	}
}

func TestLoad_EmbeddedPack(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded pack: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded pack has no lessons")
	}
	for _, l := range c.Lessons() {
		if l.Checker.Source == "" {
			t.Errorf("lesson %s has empty checker", l.ID)
		}
		if l.XPReward < 0 {
			t.Errorf("lesson %s has negative reward", l.ID)
		}
	}
}
