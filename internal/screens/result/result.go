package result

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/reflection"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
	"github.com/oyunsanaa/oyunsanaa/internal/router"
	"github.com/oyunsanaa/oyunsanaa/internal/screen"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/layout"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/theme"
)

// savedMsg is sent when the durable write finishes.
type savedMsg struct {
	Err error
}

// reflectionMsg is sent when the supportive reflection arrives.
type reflectionMsg struct {
	Text string
	Err  error
}

// ResultScreen shows the band reading for a finished check and persists
// the result in the background: local cache immediately, durable store
// asynchronously.
type ResultScreen struct {
	res       results.ScoredResult
	local     results.LocalStore
	remote    results.RemoteStore
	user      identity.Identity
	reflector *reflection.Reflector

	saved      bool
	saveErr    error
	reflecting bool
	reflection string

	cancelSave    context.CancelFunc
	cancelReflect context.CancelFunc
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a scored result.
func New(res results.ScoredResult, local results.LocalStore, remote results.RemoteStore, user identity.Identity, reflector *reflection.Reflector) *ResultScreen {
	return &ResultScreen{
		res:        res,
		local:      local,
		remote:     remote,
		user:       user,
		reflector:  reflector,
		reflecting: reflector != nil,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	// The cache write is best-effort and cannot fail.
	if s.local != nil {
		s.local.Save(s.res)
	}

	cmds := []tea.Cmd{s.saveCmd()}
	if s.reflector != nil {
		cmds = append(cmds, s.reflectCmd())
	}
	return tea.Batch(cmds...)
}

func (s *ResultScreen) saveCmd() tea.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	s.cancelSave = cancel
	return func() tea.Msg {
		defer cancel()
		err := results.SaveRemote(ctx, s.remote, s.user, s.res)
		return savedMsg{Err: err}
	}
}

func (s *ResultScreen) reflectCmd() tea.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	s.cancelReflect = cancel
	return func() tea.Msg {
		defer cancel()
		text, err := s.reflector.Reflect(ctx, s.res)
		return reflectionMsg{Text: text, Err: err}
	}
}

// cancelInflight stops pending work when the user navigates away. The
// local cache already has the result, and the attempt id makes a later
// remote retry idempotent.
func (s *ResultScreen) cancelInflight() {
	if s.cancelSave != nil {
		s.cancelSave()
	}
	if s.cancelReflect != nil {
		s.cancelReflect()
	}
}

func (s *ResultScreen) Title() string {
	return s.res.Title
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Done"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saved = true
		s.saveErr = msg.Err
		return s, nil

	case reflectionMsg:
		s.reflecting = false
		if msg.Err == nil {
			s.reflection = msg.Text
		}
		// A failed reflection is silently dropped; the band reading
		// stands on its own.
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "enter" {
			s.cancelInflight()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render(s.res.Band.Title)))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 64)

	card := theme.Card.Width(cardWidth).Render(
		theme.Body.Render(s.res.Band.Summary) +
			"\n\n" +
			theme.Subtitle.Render(fmt.Sprintf("Score: %d%%", s.res.ScorePct())),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if len(s.res.Band.Tips) > 0 {
		var tips strings.Builder
		tips.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Things to try"))
		for _, tip := range s.res.Band.Tips {
			tips.WriteString("\n  • " + tip)
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cardWidth).Foreground(theme.Text).Render(tips.String())))
		b.WriteString("\n")
	}

	switch {
	case s.reflecting:
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Writing you a note...")))
	case s.reflection != "":
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cardWidth).Italic(true).Foreground(theme.Secondary).
				Render(s.reflection)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.saveStatus()))

	return b.String()
}

func (s *ResultScreen) saveStatus() string {
	switch {
	case !s.saved:
		return theme.Hint.Render("Saving...")
	case s.saveErr == nil:
		return theme.Positive.Render("✓ Saved")
	case errors.Is(s.saveErr, identity.ErrUnauthorized):
		return theme.Attention.Render("Not saved: sign-in required")
	default:
		return theme.Attention.Render("Not saved: " + saveErrText(s.saveErr))
	}
}

func saveErrText(err error) string {
	var su *results.ErrStoreUnavailable
	if errors.As(err, &su) {
		return "store unavailable, your result is kept locally"
	}
	return err.Error()
}
