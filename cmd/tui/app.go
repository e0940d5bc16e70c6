package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/tuffous/internal/config"
	"github.com/td0m/tuffous/internal/ui"
	"github.com/td0m/tuffous/pkg/dateinput"
	"github.com/td0m/tuffous/pkg/query"
	"github.com/td0m/tuffous/pkg/repo"
	"github.com/td0m/tuffous/pkg/task"
	"github.com/td0m/tuffous/pkg/task/date"
	"go.uber.org/zap"
)

const (
	headerHeight = 3
	footerHeight = 1
)

type mode int

const (
	modeNormal mode = iota
	modeRename
	modeSchedule
)

var (
	cursorMark = lipgloss.NewStyle().Foreground(ui.Blue).Bold(true).Render("▸ ")
	noMark     = "  "
	errStyle   = lipgloss.NewStyle().Foreground(ui.Red)
	hintStyle  = lipgloss.NewStyle().Foreground(ui.Faded)
)

// tabs, in the order they are shown
var views = []struct {
	name   string
	filter query.Filter
}{
	{"Pending", query.Filter{Logged: query.Pending}},
	{"Today", query.Filter{Logged: query.Pending, Today: true}},
	{"Logged", query.Filter{Logged: query.Completed}},
}

type app struct {
	mode mode

	viewport viewport.Model
	input    textinput.Model
	dates    dateinput.Model
	tabs     ui.Tabs

	cursor int
	lines  []query.Line
	// task being renamed
	target task.ID
	// set on the first line of a truncated result
	truncated bool

	repo *repo.Repository
	cfg  config.Config
	log  *zap.Logger
	err  error
}

func newApp(r *repo.Repository, cfg config.Config, log *zap.Logger) *app {
	i := textinput.NewModel()
	i.Focus()
	i.Prompt = ""
	i.Width = 40

	names := make([]string, len(views))
	for n, v := range views {
		names[n] = v.name
	}
	a := &app{
		input: i,
		dates: dateinput.NewModel(),
		tabs:  ui.NewTabs(names...),
		repo:  r,
		cfg:   cfg,
		log:   log,
	}
	a.dates.Label = "scheduled"
	a.dates.Now = r.Now
	a.updateTasks()
	return a
}

func (m *app) Init() tea.Cmd {
	return nil
}

func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.tabs.Width = msg.Width
		m.setCursor(m.cursor)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.mode = modeNormal
		default:
			cmd = m.keyUpdate(msg)
		}
	}
	m.render()
	return m, cmd
}

// keyUpdate handles keys differently based on the current mode
func (m *app) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeRename:
		if msg.Type == tea.KeyEnter {
			m.rename(m.input.Value())
			m.mode = modeNormal
			return nil
		}
		m.input, cmd = m.input.Update(msg)
		m.input.Width = len(m.input.Value()) + 1
	case modeSchedule:
		if msg.Type == tea.KeyEnter {
			if m.dates.Valid() {
				m.schedule()
				m.mode = modeNormal
			}
			return nil
		}
		m.dates, cmd = m.dates.Update(msg)
	case modeNormal:
		m.err = nil
		switch msg.String() {
		case "g":
			m.setCursor(0)
		case "G":
			m.setCursor(len(m.lines))
		case "j", "down":
			m.setCursor(m.cursor + 1)
		case "k", "up":
			m.setCursor(m.cursor - 1)
		case "ctrl+d":
			m.setCursor(m.cursor + 10)
		case "ctrl+u":
			m.setCursor(m.cursor - 10)
		case "l", "right":
			m.tabs.Next()
			m.switchTab()
		case "h", "left":
			m.tabs.Prev()
			m.switchTab()
		case "alt+1", "alt+2", "alt+3":
			m.tabs, cmd = m.tabs.Update(msg)
			m.switchTab()
		case "i":
			if t := m.atCursor(); t != nil {
				m.edit(t.ID, t.Name())
			}
		case "d":
			if t := m.atCursor(); t != nil {
				m.mode = modeSchedule
				m.dates.SetValue(t.Scheduled)
			}
		case "t":
			if t := m.atCursor(); t != nil {
				t.Completed = !t.Completed
				m.save()
			}
		case "o":
			if t := m.atCursor(); t != nil {
				m.create(&t.ID)
			} else {
				m.create(nil)
			}
		case "O":
			m.create(nil)
		case tea.KeyDelete.String(), "x":
			if t := m.atCursor(); t != nil {
				m.repo.Remove(t.ID)
				m.save()
			}
		}
	}
	return cmd
}

func (m *app) switchTab() {
	m.updateTasks()
	m.setCursor(0)
}

// create adds a task, under parent when given, and starts renaming it
func (m *app) create(parent *task.ID) {
	now := m.repo.Now()
	t, err := m.repo.Create("new task", now)
	if err != nil {
		m.err = err
		return
	}
	if parent != nil {
		if err := m.repo.Link(*parent, t.ID); err != nil {
			m.err = err
		}
	}
	switch views[m.tabs.Value()].name {
	case "Today":
		today := date.Today(now)
		t.Scheduled = &today
	case "Logged":
		m.tabs.Set(0)
	}
	m.save()
	for i, l := range m.lines {
		if l.ID == t.ID {
			m.setCursor(i)
			break
		}
	}
	m.edit(t.ID, "")
}

func (m *app) rename(name string) {
	t, err := m.repo.Get(m.target)
	if err != nil || strings.TrimSpace(name) == "" {
		return
	}
	t.Metadata.Name = name
	m.save()
}

func (m *app) schedule() {
	t := m.atCursor()
	if t == nil {
		return
	}
	if d := m.dates.Value(); d != nil {
		v := *d
		t.Scheduled = &v
	} else {
		t.Scheduled = nil
	}
	m.save()
}

func (m *app) edit(id task.ID, name string) {
	m.mode = modeRename
	m.target = id
	m.input.SetValue(name)
	m.input.Width = len(name) + 1
	m.input.SetCursor(len(name))
}

// save persists every task and rebuilds the visible list
func (m *app) save() {
	if err := m.repo.Save(); err != nil {
		m.log.Error("save failed", zap.Error(err))
		m.err = err
	}
	m.updateTasks()
	m.setCursor(m.cursor)
}

func (m *app) updateTasks() {
	f := views[m.tabs.Value()].filter
	f.Now = m.repo.Now()
	r := query.Run(m.repo.Store, f, m.cfg.Query.MaxResults)
	m.truncated = r.Truncated
	m.lines = query.Tree(m.repo.Store, r)
}

func (m *app) atCursor() *task.Task {
	if m.cursor >= len(m.lines) {
		return nil
	}
	t, err := m.repo.Get(m.lines[m.cursor].ID)
	if err != nil {
		return nil
	}
	return t
}

func (m *app) setCursor(value int) {
	size := len(m.lines)
	m.cursor = min(max(value, 0), max(size-1, 0))
	if size == 0 || m.viewport.Height <= 0 {
		return
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursor + 1 - m.viewport.Height
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	}
}

func (m *app) render() {
	m.viewport.SetContent(m.viewTasks())
}

func (m *app) viewTasks() string {
	r := ui.NewLineRenderer(m.cfg.UI.NerdFont, true, m.repo.Now())
	var b strings.Builder
	for i, l := range m.lines {
		t, err := m.repo.Get(l.ID)
		if err != nil {
			continue
		}
		mark := noMark
		if i == m.cursor {
			mark = cursorMark
		}
		b.WriteString(mark)
		if m.mode == modeRename && l.ID == m.target {
			b.WriteString(strings.Repeat("   ", l.Depth) + "└─ " + m.input.View())
		} else {
			hasChildren := len(m.repo.Children(l.ID)) > 0
			b.WriteString(r.Line(*t, l.Depth, m.repo.Progress(l.ID), hasChildren))
		}
		b.WriteString("\n")
	}
	if len(m.lines) == 0 {
		b.WriteString(hintStyle.Render("  nothing here, press O to add a task") + "\n")
	}
	return b.String()
}

func (m *app) View() string {
	m.tabs.Info = ""
	if m.truncated {
		m.tabs.Info = hintStyle.Render("truncated")
	}
	statusline := ""
	switch {
	case m.err != nil:
		statusline = errStyle.Render(m.err.Error())
	case m.mode == modeSchedule:
		statusline = m.dates.View()
	case m.mode == modeNormal:
		statusline = hintStyle.Render("j/k move  t toggle  i rename  d schedule  o/O add  x remove  h/l tab")
	}
	return m.tabs.View() + m.viewport.View() + "\n" + statusline
}
