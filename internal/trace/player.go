// Package trace drives step-through playback of an execution trace.
//
// The player is a pure state machine over the frame sequence; the UI owns
// the clock and calls Advance on every tick. Keeping the timer out of the
// player lets tests walk the machine without wall-clock waits.
package trace

import (
	"time"

	"github.com/pydojo/pydojo/internal/engine"
)

// DefaultTickInterval is the delay between playback frames.
const DefaultTickInterval = 600 * time.Millisecond

// Phase is the playback state.
type Phase int

const (
	// Idle means no playback is active.
	Idle Phase = iota
	// Playing means a frame sequence is being stepped through.
	Playing
)

// Player steps through a trace one frame per tick.
// Transitions: Idle -> Playing(0) -> ... -> Playing(n-1) -> Idle.
type Player struct {
	phase  Phase
	frames []engine.TraceFrame
	index  int
}

// NewPlayer creates an idle player.
func NewPlayer() *Player {
	return &Player{phase: Idle}
}

// Playing reports whether a playback run is active. While true, new
// playback and execution requests must be refused.
func (p *Player) Playing() bool {
	return p.phase == Playing
}

// Start begins playback at frame 0. It is a no-op returning false when a
// run is already active (re-entry is forbidden) or when there are no
// frames to play.
func (p *Player) Start(frames []engine.TraceFrame) bool {
	if p.phase == Playing {
		return false
	}
	if len(frames) == 0 {
		return false
	}
	p.frames = frames
	p.index = 0
	p.phase = Playing
	return true
}

// Current returns the frame under the cursor.
func (p *Player) Current() (engine.TraceFrame, bool) {
	if p.phase != Playing || p.index >= len(p.frames) {
		return engine.TraceFrame{}, false
	}
	return p.frames[p.index], true
}

// Index returns the current frame index and the total frame count.
func (p *Player) Index() (int, int) {
	return p.index, len(p.frames)
}

// Advance moves to the next frame. When the last frame has been shown it
// returns done=true and the player goes Idle; completing a run this way
// is the only path that awards step XP.
func (p *Player) Advance() (done bool) {
	if p.phase != Playing {
		return false
	}
	p.index++
	if p.index >= len(p.frames) {
		p.phase = Idle
		return true
	}
	return false
}

// Cancel stops playback and returns to Idle without finishing the run.
// No XP is awarded for a cancelled run.
func (p *Player) Cancel() {
	p.phase = Idle
	p.frames = nil
	p.index = 0
}
