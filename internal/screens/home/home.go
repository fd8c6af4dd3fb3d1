package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/reflection"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
	"github.com/oyunsanaa/oyunsanaa/internal/router"
	"github.com/oyunsanaa/oyunsanaa/internal/screen"
	"github.com/oyunsanaa/oyunsanaa/internal/screens/assess"
	"github.com/oyunsanaa/oyunsanaa/internal/screens/history"
	"github.com/oyunsanaa/oyunsanaa/internal/screens/mood"
	"github.com/oyunsanaa/oyunsanaa/internal/store"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/components"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/theme"
)

// HomeScreen is the main screen: the instrument catalog plus mood
// check-in and history entries.
type HomeScreen struct {
	menu        components.Menu
	instruments []*catalog.Instrument
	cached      map[string]results.CacheEntry // slug -> last cached result
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the full catalog.
func New(local results.LocalStore, remote results.RemoteStore, moodRepo store.MoodRepo, user identity.Identity, reflector *reflection.Reflector) *HomeScreen {
	instruments := catalog.All()

	cached := make(map[string]results.CacheEntry, len(instruments))
	if local != nil {
		for _, in := range instruments {
			if e, ok := local.Latest(in.Slug); ok {
				cached[in.Slug] = e
			}
		}
	}

	items := make([]components.MenuItem, 0, len(instruments)+3)
	for _, in := range instruments {
		in := in
		items = append(items, components.MenuItem{
			Label: in.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: assess.New(in, local, remote, user, reflector),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "Mood check-in",
			Action: func() tea.Cmd {
				if moodRepo == nil {
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: mood.New(moodRepo, user)}
				}
			},
			Disabled: moodRepo == nil,
		},
		components.MenuItem{
			Label: "History",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(remote, local, user)}
				}
			},
		},
		components.MenuItem{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{
		menu:        components.NewMenu(items),
		instruments: instruments,
		cached:      cached,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("How are things today?")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Pick a check-in. A few quiet minutes is all it takes.")))
	b.WriteString("\n\n")

	// Menu with the last known reading next to each instrument.
	menuLines := make([]string, 0, len(h.menu.Items))
	for i, item := range h.menu.Items {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if item.Disabled {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if i == h.menu.Selected {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		line := prefix + item.Label
		if i < len(h.instruments) {
			if e, ok := h.cached[h.instruments[i].Slug]; ok {
				line += lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("   last: %s (%d%%)", e.BandTitle, e.ScorePct))
			}
		}
		menuLines = append(menuLines, style.Render(line))
	}

	menuBlock := strings.Join(menuLines, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menuBlock))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
