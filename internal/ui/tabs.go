package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	tabContainer = lipgloss.NewStyle().Padding(1, 1)
	activeTab    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	inactiveTab  = lipgloss.NewStyle().Foreground(Secondary)
	tabDivider   = lipgloss.NewStyle().Foreground(Faded)
)

// Tabs is a row of named views, one of them active
type Tabs struct {
	names []string
	i     int

	Width int
	Info  string
}

func NewTabs(names ...string) Tabs {
	return Tabs{names: names}
}

func (m Tabs) Init() tea.Cmd {
	return nil
}

// Update switches tabs on alt+<n>
func (m Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		s := msg.String()
		if n, found := strings.CutPrefix(s, "alt+"); found && len(n) == 1 && n[0] >= '1' && n[0] <= '9' {
			m.Set(int(n[0] - '1'))
		}
	}
	return m, nil
}

func (m Tabs) View() string {
	tabs := make([]string, len(m.names))
	for i, t := range m.names {
		r := inactiveTab
		if i == m.i {
			r = activeTab
		}
		tabs[i] = r.Render(t)
	}
	w := lipgloss.Width
	left := strings.Join(tabs, tabDivider.Render(" | "))
	right := m.Info
	space := lipgloss.NewStyle().Width(max(m.Width-2-w(left)-w(right), 0)).Render("")
	return tabContainer.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, space, right)) + "\n"
}

func (m Tabs) Value() int {
	return m.i
}

func (m Tabs) Name() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.i]
}

func (m Tabs) Len() int {
	return len(m.names)
}

func (m *Tabs) Set(i int) {
	m.i = min(max(i, 0), max(len(m.names)-1, 0))
}

// Next moves to the following tab, wrapping around
func (m *Tabs) Next() {
	if len(m.names) > 0 {
		m.i = (m.i + 1) % len(m.names)
	}
}

func (m *Tabs) Prev() {
	if len(m.names) > 0 {
		m.i = (m.i - 1 + len(m.names)) % len(m.names)
	}
}
