package workbench

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pydojo/pydojo/internal/ui/theme"
)

func (w *WorkbenchScreen) View(width, height int) string {
	editorWidth := width/2 - 4
	if editorWidth < 30 {
		editorWidth = 30
	}
	panelWidth := width - editorWidth - 8
	if panelWidth < 20 {
		panelWidth = 20
	}
	bodyHeight := height - 6
	if bodyHeight < 8 {
		bodyHeight = 8
	}

	w.editor.SetSize(editorWidth, bodyHeight-2)

	goal := theme.Subtitle.Width(width).Render(w.lesson.Goal)

	left := theme.PanelActive.Width(editorWidth).Render(w.editor.View())
	right := theme.Panel.Width(panelWidth).Height(bodyHeight).Render(w.renderPanel(panelWidth))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	var footer []string
	if w.engineErr != "" {
		footer = append(footer, theme.Fail.Render("⚠ "+w.engineErr))
	}
	if w.banner != "" {
		footer = append(footer, theme.Pass.Render(w.banner))
	}
	if w.hintText != "" {
		footer = append(footer, theme.Hint.Render("Hint: "+w.hintText))
	}
	if w.adviceWaiting {
		footer = append(footer, theme.Hint.Render("Asking the tutor..."))
	}
	if w.advice != nil {
		footer = append(footer, w.renderAdvice(width-4))
	}

	sections := []string{goal, body}
	sections = append(sections, footer...)
	return strings.Join(sections, "\n")
}

// renderPanel renders the right-hand panel for the current mode.
func (w *WorkbenchScreen) renderPanel(width int) string {
	switch w.mode {
	case modeTrace:
		return w.renderTrace(width)
	case modeAST:
		return w.renderAST()
	default:
		return w.renderOutput()
	}
}

func (w *WorkbenchScreen) renderOutput() string {
	if w.busy {
		return theme.Hint.Render("Running...")
	}

	var b strings.Builder

	if w.lastGrade != nil {
		if w.lastGrade.Passed {
			b.WriteString(theme.Pass.Render("✓ PASS") + "\n\n")
		} else {
			b.WriteString(theme.Fail.Render("✗ FAIL") + "\n")
			if w.lastGrade.Err != "" {
				b.WriteString(theme.Fail.Render(w.lastGrade.Err) + "\n")
			}
			b.WriteString("\n")
		}
		if w.lastGrade.Output != "" {
			b.WriteString(theme.Body.Render(w.lastGrade.Output))
		}
		return b.String()
	}

	if w.lastTrace != nil {
		if w.lastTrace.Output != "" {
			b.WriteString(theme.Body.Render(w.lastTrace.Output))
		}
		if w.lastTrace.Failed() {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(theme.Fail.Render(w.lastTrace.Err))
		}
		if b.Len() == 0 {
			b.WriteString(theme.Hint.Render("(no output)"))
		}
		return b.String()
	}

	return theme.Hint.Render("Ctrl+R runs your code. Output shows up here.")
}

// renderTrace shows the source with the current line highlighted and the
// local bindings at that point.
func (w *WorkbenchScreen) renderTrace(width int) string {
	frame, ok := w.player.Current()
	if !ok {
		return theme.Hint.Render("(playback finished)")
	}

	idx, total := w.player.Index()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Step %d of %d", idx+1, total)) + "\n\n")

	for i, line := range w.sourceLines() {
		lineNo := i + 1
		text := fmt.Sprintf("%3d  %s", lineNo, line)
		if lineNo == frame.Line {
			b.WriteString(theme.TraceLine.Width(width - 2).Render("▶" + text[1:]) + "\n")
		} else {
			b.WriteString(theme.Code.Render(text) + "\n")
		}
	}

	b.WriteString("\n" + theme.Subtitle.Render("Locals") + "\n")
	if len(frame.Locals) == 0 {
		b.WriteString(theme.Hint.Render("(none)") + "\n")
	} else {
		names := make([]string, 0, len(frame.Locals))
		for name := range frame.Locals {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %s = %s", name, frame.Locals[name])) + "\n")
		}
	}

	return b.String()
}

func (w *WorkbenchScreen) renderAST() string {
	if w.lastTrace == nil || w.lastTrace.AST == "" {
		return theme.Hint.Render("(no AST yet, run your code first)")
	}
	return theme.Code.Render(w.lastTrace.AST)
}

func (w *WorkbenchScreen) renderAdvice(width int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Tutor") + "\n")
	b.WriteString(theme.Body.Render(w.advice.Diagnosis) + "\n")
	b.WriteString(theme.Body.Render(w.advice.Suggestion) + "\n")
	b.WriteString(theme.Hint.Render("Review: " + w.advice.Concept))
	return theme.Card.Width(width).Render(b.String())
}
