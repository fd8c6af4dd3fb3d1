package mood

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/router"
	"github.com/oyunsanaa/oyunsanaa/internal/screen"
	"github.com/oyunsanaa/oyunsanaa/internal/store"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/components"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/layout"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/theme"
)

// phase tracks where the check-in flow is.
type phase int

const (
	phaseScore phase = iota
	phaseNote
	phaseDone
)

var moodLabels = []string{
	"Rough — today was heavy",
	"Low — not my best",
	"Okay — somewhere in the middle",
	"Good — mostly upbeat",
	"Great — genuinely well",
}

type moodSavedMsg struct {
	Err error
}

// MoodScreen records a quick 1-5 mood check-in with an optional note.
type MoodScreen struct {
	repo store.MoodRepo
	user identity.Identity

	phase   phase
	options components.OptionList
	note    components.TextInput
	score   int
	errMsg  string
}

var _ screen.Screen = (*MoodScreen)(nil)
var _ screen.KeyHintProvider = (*MoodScreen)(nil)

// New creates a new MoodScreen.
func New(repo store.MoodRepo, user identity.Identity) *MoodScreen {
	return &MoodScreen{
		repo:    repo,
		user:    user,
		options: components.NewOptionList("How is your mood right now?", moodLabels, 2),
		note:    components.NewTextInput("anything worth noting? (optional)", 120),
	}
}

func (s *MoodScreen) Init() tea.Cmd {
	return nil
}

func (s *MoodScreen) Title() string {
	return "Mood check-in"
}

func (s *MoodScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseNote:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Done"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *MoodScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if saved, ok := msg.(moodSavedMsg); ok {
		if saved.Err != nil {
			s.errMsg = saved.Err.Error()
			s.phase = phaseNote
		} else {
			s.phase = phaseDone
		}
		return s, nil
	}

	switch s.phase {
	case phaseScore:
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		if s.options.Submitted {
			// Weights on this list are positional: option 0 is mood 1.
			s.score = s.options.Selected + 1
			s.phase = phaseNote
			return s, s.note.Init()
		}
		return s, cmd

	case phaseNote:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return s, s.saveCmd()
		}
		var cmd tea.Cmd
		s.note, cmd = s.note.Update(msg)
		return s, cmd

	case phaseDone:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *MoodScreen) saveCmd() tea.Cmd {
	score, note := s.score, strings.TrimSpace(s.note.Value())
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return moodSavedMsg{Err: s.repo.Append(ctx, s.user.ID, score, note)}
	}
}

func (s *MoodScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch s.phase {
	case phaseScore:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	case phaseNote:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Bold(true).Render("Add a note?")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.note.View()))
		if s.errMsg != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Attention.Render("Could not save: "+s.errMsg)))
		}

	case phaseDone:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Positive.Render("✓ Mood recorded")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Small habit, big picture. See you tomorrow.")))
	}

	return b.String()
}
