// Package dateinput is a text input that reads a calendar day as it is typed.
package dateinput

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/tuffous/pkg/task/date"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.Copy().
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.Copy().
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}
)

type Model struct {
	i     textinput.Model
	value *date.Date
	// Cleared is true when the input is empty, which unsets the date
	cleared bool

	Label string
	Now   func() time.Time
}

func NewModel() Model {
	i := textinput.NewModel()
	i.Focus()
	i.CharLimit = 32
	i.Prompt = ""
	return Model{
		i:       i,
		cleared: true,
		Label:   "date",
		Now:     time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update feeds keys to the text input and reparses its content
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.i, cmd = m.i.Update(msg)
		m.parse()
		return m, cmd
	}
	return m, nil
}

func (m *Model) parse() {
	s := m.i.Value()
	m.value = nil
	m.cleared = s == ""
	if m.cleared {
		return
	}
	if d, err := date.ParseDate(s, m.Now()); err == nil {
		m.value = &d
	}
}

func (m Model) View() string {
	status := ""
	switch {
	case m.cleared:
	case m.value != nil:
		status = checkmark + " " + Describe(*m.value, date.Today(m.Now()))
	default:
		status = cross
	}
	return lipgloss.NewStyle().Foreground(faded).Render(m.Label+": ") + m.i.View() + status
}

// Value returns the parsed day, nil when the input is empty or invalid
func (m Model) Value() *date.Date {
	return m.value
}

// Valid reports whether Value can be applied: a day was read, or the input
// was cleared
func (m Model) Valid() bool {
	return m.cleared || m.value != nil
}

func (m *Model) SetValue(d *date.Date) {
	if d == nil {
		m.i.SetValue("")
	} else {
		m.i.SetValue(d.String())
	}
	m.parse()
}
