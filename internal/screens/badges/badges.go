package badges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pydojo/pydojo/internal/progress"
	"github.com/pydojo/pydojo/internal/router"
	"github.com/pydojo/pydojo/internal/screen"
	"github.com/pydojo/pydojo/internal/ui/components"
	"github.com/pydojo/pydojo/internal/ui/layout"
	"github.com/pydojo/pydojo/internal/ui/theme"
)

// BadgesScreen shows the achievement tray: every achievement in catalog
// order, locked or unlocked.
type BadgesScreen struct {
	prog *progress.Model
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

// New creates the badges screen.
func New(prog *progress.Model) *BadgesScreen {
	return &BadgesScreen{prog: prog}
}

func (s *BadgesScreen) Init() tea.Cmd {
	return nil
}

func (s *BadgesScreen) Title() string {
	return "Badges"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *BadgesScreen) View(width, height int) string {
	state := s.prog.State()
	catalog := progress.Catalog()

	header := theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"%d of %d unlocked", state.UnlockedCount(), len(catalog),
	))

	cardWidth := width/2 - 6
	if cardWidth < 24 {
		cardWidth = 24
	}

	var cards []string
	for _, a := range catalog {
		badge := components.Badge{
			Title:       a.Title,
			Description: a.Description,
			Unlocked:    state.Unlocked[a.ID],
			Width:       cardWidth,
		}
		cards = append(cards, badge.View())
	}

	// Two cards per row.
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], " ", cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}

	grid := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(rows, "\n"))

	return header + "\n\n" + grid
}
