package components

import (
	"charm.land/lipgloss/v2"

	"github.com/pydojo/pydojo/internal/ui/theme"
)

// Badge renders a single achievement as a card.
type Badge struct {
	Title       string
	Description string
	Unlocked    bool
	Width       int
}

// View renders the badge.
func (b Badge) View() string {
	icon := "🔒"
	titleStyle := theme.BadgeLocked
	descStyle := theme.BadgeLocked
	if b.Unlocked {
		icon = "🏅"
		titleStyle = theme.BadgeUnlocked
		descStyle = lipgloss.NewStyle().Foreground(theme.Text)
	}

	title := titleStyle.Render(icon + " " + b.Title)
	desc := descStyle.Render(b.Description)

	return theme.Card.Width(b.Width).Render(title + "\n" + desc)
}
