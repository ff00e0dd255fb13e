package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catcher-arcade/internal/profile"
)

// NameModel asks for the player name shown on the scoreboard.
type NameModel struct {
	input     textinput.Model
	width     int
	height    int
	invalid   bool
	done      bool
	cancelled bool
}

// NewNameModel creates a name prompt prefilled with current.
func NewNameModel(current string, width, height int) NameModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = profile.MaxNameLen
	ti.Width = profile.MaxNameLen + 1
	ti.Prompt = "> "
	ti.SetValue(current)
	ti.Focus()

	return NameModel{input: ti, width: width, height: height}
}

// Init starts the cursor blinking.
func (m NameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if _, ok := profile.NormalizeName(m.input.Value()); !ok {
				m.invalid = true
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
		m.invalid = false

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NameModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(1, m.height/3)))
	b.WriteString(centerText(titleStyle.Render("Who is playing?"), m.width))
	b.WriteString("\n\n")
	for _, line := range strings.Split(boxStyle.Render(m.input.View()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.invalid {
		b.WriteString(centerText(errStyle.Render("Please enter a name"), m.width))
	} else {
		b.WriteString(centerText(dimStyle.Render("Enter: confirm  |  Esc: skip"), m.width))
	}
	b.WriteString("\n")
	return b.String()
}

// Name returns the entered name and whether it was confirmed.
func (m NameModel) Name() (string, bool) {
	if !m.done {
		return "", false
	}
	return profile.NormalizeName(m.input.Value())
}

// Cancelled reports whether the prompt was dismissed.
func (m NameModel) Cancelled() bool {
	return m.cancelled
}

// RunNameEntry shows the prompt on its own. It returns the confirmed
// name, or ok=false when skipped.
func RunNameEntry(current string, width, height int) (name string, ok bool, err error) {
	p := tea.NewProgram(NewNameModel(current, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, isName := final.(NameModel)
	if !isName {
		return "", false, nil
	}
	name, ok = m.Name()
	return name, ok, nil
}
