package workbench

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/pydojo/pydojo/internal/engine"
	"github.com/pydojo/pydojo/internal/lessons"
	"github.com/pydojo/pydojo/internal/progress"
	"github.com/pydojo/pydojo/internal/screen"
	"github.com/pydojo/pydojo/internal/store"
	"github.com/pydojo/pydojo/internal/trace"
	"github.com/pydojo/pydojo/internal/tutor"
	"github.com/pydojo/pydojo/internal/ui/components"
	"github.com/pydojo/pydojo/internal/ui/layout"
)

// stepCompleteXP is awarded for watching a trace playback through to the
// last frame. Cancelled runs award nothing.
const stepCompleteXP = 5

// panelMode selects what the right-hand panel shows.
type panelMode int

const (
	modeOutput panelMode = iota
	modeTrace
	modeAST
)

// Deps carries the services the workbench needs. Store and Tutor may be
// nil; the screen degrades gracefully without them.
type Deps struct {
	Engine    engine.Engine
	Progress  *progress.Model
	Hints     *progress.HintTracker
	Store     *store.Store
	Tutor     *tutor.Service
	SessionID string
}

// WorkbenchScreen is the lesson editor: write code, run it, step through
// a trace, inspect the AST, and submit for grading.
type WorkbenchScreen struct {
	lesson lessons.Lesson
	deps   Deps

	editor components.Editor
	player *trace.Player
	mode   panelMode

	busy      bool // an engine request is in flight
	lastTrace *engine.TraceResult
	lastGrade *engine.GradeResult

	engineErr string // engine-level failure banner, cleared on next action
	banner    string // XP / achievement toast
	hintText  string

	advice        *tutor.Advice
	adviceWaiting bool
}

var _ screen.Screen = (*WorkbenchScreen)(nil)
var _ screen.KeyHintProvider = (*WorkbenchScreen)(nil)

// New creates a workbench for the given lesson, preloading its starter
// code into the editor.
func New(lesson lessons.Lesson, deps Deps) *WorkbenchScreen {
	return &WorkbenchScreen{
		lesson: lesson,
		deps:   deps,
		editor: components.NewEditor(lesson.StarterCode, 60, 16),
		player: trace.NewPlayer(),
	}
}

func (w *WorkbenchScreen) Init() tea.Cmd {
	return w.editor.Init()
}

func (w *WorkbenchScreen) Title() string {
	return w.lesson.Title
}

func (w *WorkbenchScreen) KeyHints() []layout.KeyHint {
	if w.player.Playing() {
		return []layout.KeyHint{
			{Key: "Ctrl+X", Description: "Stop playback"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Ctrl+R", Description: "Run"},
		{Key: "Ctrl+S", Description: "Step"},
		{Key: "Ctrl+T", Description: "Test"},
		{Key: "Ctrl+H", Description: "Hint"},
	}
	if w.lastTrace != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+A", Description: "AST"})
	}
	if w.deps.Tutor != nil && w.failedGrade() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+G", Description: "Tutor"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (w *WorkbenchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case traceDoneMsg:
		return w.handleTraceDone(msg)

	case gradeDoneMsg:
		return w.handleGradeDone(msg)

	case playTickMsg:
		return w.handlePlayTick()

	case adviceTickMsg:
		return w.handleAdviceTick()

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	var cmd tea.Cmd
	w.editor, cmd = w.editor.Update(msg)
	return w, cmd
}

func (w *WorkbenchScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Playback owns the keyboard until it ends.
	if w.player.Playing() {
		if key == "ctrl+x" {
			w.player.Cancel()
			w.mode = modeOutput
		}
		return w, nil
	}

	switch key {
	case "ctrl+r":
		return w, w.startTrace(false)
	case "ctrl+s":
		return w, w.startTrace(true)
	case "ctrl+t":
		return w, w.startGrade()
	case "ctrl+a":
		if w.lastTrace != nil {
			if w.mode == modeAST {
				w.mode = modeOutput
			} else {
				w.mode = modeAST
			}
		}
		return w, nil
	case "ctrl+h":
		w.requestHint()
		return w, nil
	case "ctrl+g":
		return w, w.requestAdvice()
	}

	var cmd tea.Cmd
	w.editor, cmd = w.editor.Update(msg)
	return w, cmd
}

// startTrace sends the editor contents to the engine. Refused while a
// request is already in flight.
func (w *WorkbenchScreen) startTrace(play bool) tea.Cmd {
	if w.busy {
		return nil
	}
	w.busy = true
	w.clearBanners()

	source := w.editor.Value()
	eng := w.deps.Engine
	return func() tea.Msg {
		res, err := eng.Trace(context.Background(), source)
		return traceDoneMsg{Res: res, Err: err, play: play}
	}
}

func (w *WorkbenchScreen) startGrade() tea.Cmd {
	if w.busy {
		return nil
	}
	w.busy = true
	w.clearBanners()

	source := w.editor.Value()
	lesson := w.lesson
	eng := w.deps.Engine
	return func() tea.Msg {
		res, err := eng.Grade(context.Background(), source, lesson.Checker.Source, lesson.Checker.EntryPoint)
		return gradeDoneMsg{Res: res, Err: err}
	}
}

func (w *WorkbenchScreen) handleTraceDone(msg traceDoneMsg) (screen.Screen, tea.Cmd) {
	w.busy = false

	if msg.Err != nil {
		w.engineErr = msg.Err.Error()
		return w, nil
	}

	w.lastTrace = msg.Res
	w.mode = modeOutput

	if msg.play && !msg.Res.Failed() {
		if w.player.Start(msg.Res.Frames) {
			w.mode = modeTrace
			return w, playTickCmd()
		}
	}

	return w, nil
}

func (w *WorkbenchScreen) handleGradeDone(msg gradeDoneMsg) (screen.Screen, tea.Cmd) {
	w.busy = false

	if msg.Err != nil {
		// Engine failure: no verdict, no fail counted, retryable as-is.
		w.engineErr = msg.Err.Error()
		return w, nil
	}

	w.lastGrade = msg.Res
	w.mode = modeOutput

	ctx := context.Background()
	w.recordAttempt(ctx, "grade", msg.Res.Passed, msg.Res.Err)

	if msg.Res.Passed {
		awarded, unlocked, err := w.deps.Progress.MarkCompleted(ctx, w.lesson.ID, w.lesson.XPReward)
		if err != nil {
			w.engineErr = err.Error()
			return w, nil
		}
		w.banner = w.passBanner(awarded, unlocked)
		return w, nil
	}

	w.deps.Hints.RecordFail(w.lesson.ID)
	return w, nil
}

func (w *WorkbenchScreen) passBanner(awarded bool, unlocked []string) string {
	if !awarded {
		return "Passed! (already completed, no XP)"
	}
	b := fmt.Sprintf("Passed! +%d XP", w.lesson.XPReward)
	for _, id := range unlocked {
		if a, ok := progress.AchievementByID(id); ok {
			b += fmt.Sprintf("  🏅 %s", a.Title)
		}
	}
	return b
}

func (w *WorkbenchScreen) handlePlayTick() (screen.Screen, tea.Cmd) {
	if !w.player.Playing() {
		return w, nil
	}

	if w.player.Advance() {
		w.mode = modeOutput
		ctx := context.Background()
		w.recordAttempt(ctx, "trace", true, "")
		if _, err := w.deps.Progress.AddXP(ctx, stepCompleteXP); err != nil {
			w.engineErr = err.Error()
			return w, nil
		}
		w.banner = fmt.Sprintf("Trace complete! +%d XP", stepCompleteXP)
		return w, nil
	}

	return w, playTickCmd()
}

// requestHint reveals the next hint. Asking for a hint counts as an
// attempt, so repeated requests walk forward through the hint list.
func (w *WorkbenchScreen) requestHint() {
	hint, ok, exhausted := w.deps.Hints.RequestHint(w.lesson.ID, w.lesson.Hints)
	switch {
	case !ok:
		w.hintText = "No hints for this lesson."
	case exhausted:
		w.hintText = "(last hint) " + hint
	default:
		w.hintText = hint
	}
}

func (w *WorkbenchScreen) requestAdvice() tea.Cmd {
	if w.deps.Tutor == nil || w.adviceWaiting || !w.failedGrade() {
		return nil
	}
	w.adviceWaiting = true
	w.advice = nil

	w.deps.Tutor.RequestAdvice(context.Background(), tutor.AdviceInput{
		LessonTitle: w.lesson.Title,
		Goal:        w.lesson.Goal,
		Source:      w.editor.Value(),
		Diagnostic:  w.lastGrade.Err,
		Output:      w.lastGrade.Output,
	})
	return adviceTickCmd()
}

func (w *WorkbenchScreen) handleAdviceTick() (screen.Screen, tea.Cmd) {
	if !w.adviceWaiting {
		return w, nil
	}
	if advice, ok := w.deps.Tutor.ConsumeAdvice(); ok {
		w.advice = advice
		w.adviceWaiting = false
		return w, nil
	}
	if err := w.deps.Tutor.LastError(); err != nil {
		w.deps.Tutor.ConsumeAdvice() // clear the error slot
		w.adviceWaiting = false
		w.hintText = "Tutor unavailable right now."
		return w, nil
	}
	return w, adviceTickCmd()
}

func (w *WorkbenchScreen) recordAttempt(ctx context.Context, kind string, passed bool, detail string) {
	if w.deps.Store == nil {
		return
	}
	_ = w.deps.Store.RecordAttempt(ctx, store.Attempt{
		SessionID: w.deps.SessionID,
		LessonID:  w.lesson.ID,
		Kind:      kind,
		Passed:    passed,
		Detail:    detail,
	})
}

func (w *WorkbenchScreen) failedGrade() bool {
	return w.lastGrade != nil && !w.lastGrade.Passed
}

func (w *WorkbenchScreen) clearBanners() {
	w.engineErr = ""
	w.banner = ""
}

// sourceLines splits the editor text for the trace view.
func (w *WorkbenchScreen) sourceLines() []string {
	return strings.Split(strings.TrimRight(w.editor.Value(), "\n"), "\n")
}

func playTickCmd() tea.Cmd {
	return tea.Tick(trace.DefaultTickInterval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func adviceTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return adviceTickMsg(t)
	})
}
