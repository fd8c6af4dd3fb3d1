package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oyunsanaa/oyunsanaa/internal/ui/theme"
)

// OptionList is a selector for a single questionnaire answer. There is
// no right answer here; the chosen option just carries a weight.
type OptionList struct {
	Prompt    string
	Options   []string
	Selected  int
	Submitted bool
}

// NewOptionList creates a selector over the given option labels.
// preselect restores a previously recorded choice; pass -1 for none.
func NewOptionList(prompt string, options []string, preselect int) OptionList {
	selected := 0
	if preselect >= 0 && preselect < len(options) {
		selected = preselect
	}
	return OptionList{
		Prompt:   prompt,
		Options:  options,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		o.Submitted = true
	default:
		// Number keys pick and submit in one stroke.
		k := kmsg.String()
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			idx := int(k[0] - '1')
			if idx < len(o.Options) {
				o.Selected = idx
				o.Submitted = true
			}
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(o.Prompt) + "\n\n"

	for i, opt := range o.Options {
		prefix := "    "
		if i == o.Selected {
			prefix = "  ▸ "
		}

		line := prefix + opt

		if i == o.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
