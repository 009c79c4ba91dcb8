package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pydojo/pydojo/internal/lessons"
	"github.com/pydojo/pydojo/internal/progress"
	"github.com/pydojo/pydojo/internal/router"
	"github.com/pydojo/pydojo/internal/screen"
	"github.com/pydojo/pydojo/internal/screens/badges"
	"github.com/pydojo/pydojo/internal/screens/workbench"
	"github.com/pydojo/pydojo/internal/ui/components"
	"github.com/pydojo/pydojo/internal/ui/theme"
)

// HomeScreen is the lesson picker and progress overview.
type HomeScreen struct {
	catalog *lessons.Catalog
	prog    *progress.Model
	deps    workbench.Deps
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The workbench dependencies are threaded
// through so selecting a lesson can open it directly.
func New(catalog *lessons.Catalog, prog *progress.Model, deps workbench.Deps) *HomeScreen {
	h := &HomeScreen{
		catalog: catalog,
		prog:    prog,
		deps:    deps,
	}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	state := h.prog.State()

	var items []components.MenuItem
	for _, l := range h.catalog.Lessons() {
		lesson := l
		detail := fmt.Sprintf("%d XP", lesson.XPReward)
		if state.Completed[lesson.ID] {
			detail = "✓ done"
		}
		items = append(items, components.MenuItem{
			Label:  lesson.Title,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: workbench.New(lesson, h.deps),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "BADGES",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badges.New(h.prog)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Completion marks can change while a workbench is open, so rebuild
	// the items whenever focus returns here.
	if _, ok := msg.(tea.KeyMsg); ok {
		selected := h.menu.Selected
		h.menu.Items = h.buildItems()
		if selected < len(h.menu.Items) {
			h.menu.Selected = selected
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	state := h.prog.State()

	title := theme.Title.Width(width).Render("PyDojo")
	subtitle := theme.Subtitle.Width(width).Render("Learn Python, one kata at a time")

	barWidth := width / 2
	if barWidth < 20 {
		barWidth = 20
	}
	intoLevel := state.XP % progress.LevelQuantum
	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", state.Level),
		float64(intoLevel)/float64(progress.LevelQuantum),
		false,
		barWidth,
	).View()
	barLine := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		bar + theme.Hint.Render(fmt.Sprintf("  %d/%d XP to next", intoLevel, progress.LevelQuantum)),
	)

	stats := theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"%d/%d lessons · %d badges",
		state.CompletedCount(), h.catalog.Len(), state.UnlockedCount(),
	))

	menu := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View())

	content := strings.Join([]string{title, subtitle, "", barLine, stats, "", menu}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
