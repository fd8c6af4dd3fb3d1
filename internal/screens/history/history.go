package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
	"github.com/oyunsanaa/oyunsanaa/internal/router"
	"github.com/oyunsanaa/oyunsanaa/internal/screen"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/layout"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Rows     []results.StoredResult
	Fallback []results.CacheEntry // local cache, when the store is down
	Err      error
}

// HistoryScreen lists past results, newest first. The durable store is
// the source of truth; when it is unreachable the local cache stands in
// with whatever it has.
type HistoryScreen struct {
	remote results.RemoteStore
	local  results.LocalStore
	user   identity.Identity

	rows     []results.StoredResult
	fallback []results.CacheEntry
	selected int
	loaded   bool
	degraded bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(remote results.RemoteStore, local results.LocalStore, user identity.Identity) *HistoryScreen {
	return &HistoryScreen{remote: remote, local: local, user: user}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		rows, err := s.remote.History(ctx, s.user.ID, historyLimit)
		if err == nil {
			return historyLoadedMsg{Rows: rows}
		}

		if s.local == nil {
			return historyLoadedMsg{Err: err}
		}

		// Fall back to the cache, grouped by catalog category.
		var entries []results.CacheEntry
		seen := make(map[string]bool)
		for _, in := range catalog.All() {
			if seen[in.Category] {
				continue
			}
			seen[in.Category] = true
			entries = append(entries, s.local.Category(in.Category)...)
		}
		return historyLoadedMsg{Fallback: entries, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		s.rows = msg.Rows
		s.fallback = msg.Fallback
		if msg.Err != nil {
			if len(msg.Fallback) > 0 {
				s.degraded = true
			} else {
				s.errMsg = msg.Err.Error()
			}
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < s.count()-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) count() int {
	if len(s.rows) > 0 {
		return len(s.rows)
	}
	return len(s.fallback)
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCould not load history: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if s.count() == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Take a check-in first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.degraded {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Store unreachable — showing recent local results only.")))
		b.WriteString("\n\n")
	}

	if len(s.rows) > 0 {
		for i, row := range s.rows {
			line := fmt.Sprintf("%s  %s  %s  %d%%",
				row.CreatedAt.Format("Jan 02, 2006"), row.Title, row.BandTitle, row.ScorePct)
			b.WriteString(s.renderLine(line, i, width))
		}
	} else {
		for i, e := range s.fallback {
			date := e.SavedAt
			if t, err := time.Parse(time.RFC3339, e.SavedAt); err == nil {
				date = t.Format("Jan 02, 2006")
			}
			line := fmt.Sprintf("%s  %s  %s  %d%%", date, e.Title, e.BandTitle, e.ScorePct)
			b.WriteString(s.renderLine(line, i, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderLine(line string, i, width int) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		prefix = "> "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+line)) + "\n"
}
