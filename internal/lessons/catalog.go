package lessons

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed packs/intro.json
var packFS embed.FS

// ErrMalformedFeed marks a lesson feed that failed schema validation or
// JSON parsing. It is fatal to startup; there is no retry.
var ErrMalformedFeed = errors.New("malformed lesson feed")

// Catalog holds the ordered lesson list and the selection cursor.
type Catalog struct {
	pack   Pack
	cursor int
	byID   map[string]int
}

// Load reads, validates, and parses a lesson pack file. An empty path
// loads the embedded default pack.
func Load(path string) (*Catalog, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = packFS.ReadFile("packs/intro.json")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read lesson feed: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw pack JSON and builds a Catalog from it.
func Parse(raw []byte) (*Catalog, error) {
	if err := ValidatePack(raw); err != nil {
		return nil, err
	}

	var pack Pack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}

	byID := make(map[string]int, len(pack.Lessons))
	for i := range pack.Lessons {
		l := &pack.Lessons[i]
		if _, dup := byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate lesson id %q", ErrMalformedFeed, l.ID)
		}
		byID[l.ID] = i
		if l.Checker.EntryPoint == "" {
			l.Checker.EntryPoint = DefaultEntryPoint
		}
	}

	return &Catalog{pack: pack, byID: byID}, nil
}

// Name returns the pack name.
func (c *Catalog) Name() string { return c.pack.Name }

// Len returns the number of lessons.
func (c *Catalog) Len() int { return len(c.pack.Lessons) }

// Lessons returns the ordered lesson list.
func (c *Catalog) Lessons() []Lesson { return c.pack.Lessons }

// Current returns the lesson under the cursor.
func (c *Catalog) Current() Lesson {
	return c.pack.Lessons[c.cursor]
}

// Cursor returns the current selection index.
func (c *Catalog) Cursor() int { return c.cursor }

// Select moves the cursor to index i, clamped to the valid range.
func (c *Catalog) Select(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(c.pack.Lessons)-1 {
		i = len(c.pack.Lessons) - 1
	}
	c.cursor = i
}

// SelectID moves the cursor to the lesson with the given id.
func (c *Catalog) SelectID(id string) bool {
	i, ok := c.byID[id]
	if ok {
		c.cursor = i
	}
	return ok
}

// ByID returns the lesson with the given id.
func (c *Catalog) ByID(id string) (Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return c.pack.Lessons[i], true
}
