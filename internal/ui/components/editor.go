package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// Editor wraps bubbles/textarea as a small code editor.
type Editor struct {
	Model textarea.Model
}

// NewEditor creates a code editor preloaded with the given source.
func NewEditor(source string, width, height int) Editor {
	ta := textarea.New()
	ta.SetValue(source)
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.ShowLineNumbers = true
	ta.Focus()
	return Editor{Model: ta}
}

// Init returns the initial command.
func (e Editor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e Editor) View() string {
	return e.Model.View()
}

// Value returns the current source text.
func (e Editor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the source text.
func (e *Editor) SetValue(source string) {
	e.Model.SetValue(source)
}

// Focus gives the editor keyboard focus.
func (e *Editor) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.Model.Blur()
}

// Focused reports whether the editor has focus.
func (e Editor) Focused() bool {
	return e.Model.Focused()
}

// SetSize resizes the editor viewport.
func (e *Editor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}
