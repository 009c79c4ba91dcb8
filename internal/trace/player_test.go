package trace

import (
	"testing"

	"github.com/pydojo/pydojo/internal/engine"
)

func frames(n int) []engine.TraceFrame {
	fs := make([]engine.TraceFrame, n)
	for i := range fs {
		fs[i] = engine.TraceFrame{Line: i + 1, Locals: map[string]string{}}
	}
	return fs
}

func TestPlayer_WalksAllFrames(t *testing.T) {
	p := NewPlayer()
	if !p.Start(frames(3)) {
		t.Fatal("Start refused")
	}

	var visited []int
	for {
		f, ok := p.Current()
		if !ok {
			t.Fatal("Current failed while playing")
		}
		visited = append(visited, f.Line)
		if p.Advance() {
			break
		}
	}

	if len(visited) != 3 || visited[0] != 1 || visited[2] != 3 {
		t.Errorf("visited = %v, want [1 2 3]", visited)
	}
	if p.Playing() {
		t.Error("player must be idle after the last frame")
	}
}

func TestPlayer_ReentryIgnored(t *testing.T) {
	p := NewPlayer()
	if !p.Start(frames(2)) {
		t.Fatal("Start refused")
	}
	if p.Start(frames(5)) {
		t.Error("Start during playback must be refused")
	}
	// The original run is untouched.
	if _, total := p.Index(); total != 2 {
		t.Errorf("frame count = %d, want 2", total)
	}
}

func TestPlayer_EmptyTraceRefused(t *testing.T) {
	p := NewPlayer()
	if p.Start(nil) {
		t.Error("Start with no frames must be refused")
	}
	if p.Playing() {
		t.Error("player must stay idle")
	}
}

func TestPlayer_CancelStopsWithoutDone(t *testing.T) {
	p := NewPlayer()
	p.Start(frames(4))
	p.Advance()

	p.Cancel()
	if p.Playing() {
		t.Error("player must be idle after cancel")
	}
	// Advancing a cancelled run never reports completion.
	if p.Advance() {
		t.Error("Advance after cancel must not report done")
	}
}

func TestPlayer_RestartAfterCompletion(t *testing.T) {
	p := NewPlayer()
	p.Start(frames(1))
	if !p.Advance() {
		t.Fatal("single-frame run should complete on first advance")
	}
	if !p.Start(frames(2)) {
		t.Error("player must accept a new run after completion")
	}
}
