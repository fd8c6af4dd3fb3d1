package assess

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oyunsanaa/oyunsanaa/internal/assessment"
	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/reflection"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
	"github.com/oyunsanaa/oyunsanaa/internal/router"
	"github.com/oyunsanaa/oyunsanaa/internal/screen"
	"github.com/oyunsanaa/oyunsanaa/internal/screens/result"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/components"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/layout"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/theme"
)

// AssessScreen walks the user through one instrument, one question at a
// time. Questions may be skipped; skipped answers deflate the score.
type AssessScreen struct {
	instrument *catalog.Instrument
	attempt    *assessment.Attempt
	index      int
	maxVisited int
	options    components.OptionList
	errMsg     string

	local     results.LocalStore
	remote    results.RemoteStore
	user      identity.Identity
	reflector *reflection.Reflector
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New starts a fresh attempt for the given instrument.
func New(in *catalog.Instrument, local results.LocalStore, remote results.RemoteStore, user identity.Identity, reflector *reflection.Reflector) *AssessScreen {
	s := &AssessScreen{
		instrument: in,
		attempt:    assessment.NewAttempt(in),
		local:      local,
		remote:     remote,
		user:       user,
		reflector:  reflector,
	}
	s.options = s.optionListFor(0)
	return s
}

func (s *AssessScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessScreen) Title() string {
	return s.instrument.Title
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "s", Description: "Skip"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "s":
		// Skip: leave the question unanswered and move on.
		return s, s.advance()
	case "left", "h":
		if s.index > 0 {
			s.index--
			s.options = s.optionListFor(s.index)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if s.options.Submitted {
		q := s.instrument.Questions[s.index]
		weight := q.Options[s.options.Selected].Weight
		if err := s.attempt.Record(q.ID, weight); err != nil {
			s.errMsg = err.Error()
			s.options.Submitted = false
			return s, nil
		}
		s.errMsg = ""
		return s, s.advance()
	}
	return s, cmd
}

// advance moves to the next question, or scores and hands off to the
// result screen when the last question has been seen.
func (s *AssessScreen) advance() tea.Cmd {
	if s.index < len(s.instrument.Questions)-1 {
		s.index++
		if s.index > s.maxVisited {
			s.maxVisited = s.index
		}
		s.options = s.optionListFor(s.index)
		return nil
	}

	scored, err := assessment.Score(s.instrument, s.attempt)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	res := results.ScoredResult{
		Slug:       s.instrument.Slug,
		Title:      s.instrument.Title,
		Category:   s.instrument.Category,
		Percentage: scored.Percentage,
		Band:       scored.Band,
		Answers:    s.attempt.Answers(),
		AttemptID:  s.attempt.ID,
		CreatedAt:  time.Now().UTC(),
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: result.New(res, s.local, s.remote, s.user, s.reflector),
		}
	}
}

func (s *AssessScreen) optionListFor(index int) components.OptionList {
	q := s.instrument.Questions[index]
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}

	preselect := -1
	if w, ok := s.attempt.Answer(q.ID); ok {
		for i, o := range q.Options {
			if o.Weight == w {
				preselect = i
				break
			}
		}
	}

	return components.NewOptionList(q.Text, labels, preselect)
}

// hasSkipped reports whether any passed-over question is still
// unanswered. The question on screen and the furthest one reached are
// pending, not skipped.
func (s *AssessScreen) hasSkipped() bool {
	for i := 0; i < s.maxVisited; i++ {
		if i == s.index {
			continue
		}
		if _, ok := s.attempt.Answer(s.instrument.Questions[i].ID); !ok {
			return true
		}
	}
	return false
}

func (s *AssessScreen) View(width, height int) string {
	q := s.instrument.Questions[s.index]
	_, total := s.attempt.Progress()

	var b strings.Builder
	b.WriteString("\n")

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.index+1, total),
		float64(s.index)/float64(total),
		false,
		min(width-8, 60),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(catalog.DomainDisplayName(q.Domain))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if s.hasSkipped() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Some questions were skipped; they count as zero.")))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Attention.Render(s.errMsg)))
	}

	return b.String()
}
