package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/reflection"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
	"github.com/oyunsanaa/oyunsanaa/internal/router"
	"github.com/oyunsanaa/oyunsanaa/internal/screen"
	"github.com/oyunsanaa/oyunsanaa/internal/screens/assess"
	"github.com/oyunsanaa/oyunsanaa/internal/screens/home"
	"github.com/oyunsanaa/oyunsanaa/internal/store"
	"github.com/oyunsanaa/oyunsanaa/internal/ui/layout"
)

// Deps carries everything the screens need. Reflector may be nil when
// no provider is configured; the result screen then skips reflections.
// StartInstrument, when set, opens that instrument immediately on top
// of the home screen.
type Deps struct {
	Local           results.LocalStore
	Remote          results.RemoteStore
	MoodRepo        store.MoodRepo
	User            identity.Identity
	Reflector       *reflection.Reflector
	StartInstrument *catalog.Instrument
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	user    string
	width   int
	height  int
	initCmd tea.Cmd
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Local, deps.Remote, deps.MoodRepo, deps.User, deps.Reflector)
	m := AppModel{
		router: router.New(homeScreen),
		user:   deps.User.ID,
	}
	if deps.StartInstrument != nil {
		in := deps.StartInstrument
		m.initCmd = func() tea.Msg {
			return router.PushScreenMsg{
				Screen: assess.New(in, deps.Local, deps.Remote, deps.User, deps.Reflector),
			}
		}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.user, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
