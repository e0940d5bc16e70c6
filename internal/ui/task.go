package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/tuffous/pkg/query"
	"github.com/td0m/tuffous/pkg/task"
	"github.com/td0m/tuffous/pkg/task/date"
)

var (
	TaskTitle    = lipgloss.NewStyle().Bold(true)
	SubTaskTitle = lipgloss.NewStyle().Foreground(Secondary)
	TaskDetails  = lipgloss.NewStyle().Foreground(Secondary)
	TaskTag      = lipgloss.NewStyle().Foreground(Blue)
	TaskDivider  = lipgloss.NewStyle().Foreground(Faded)
	TaskProgress = lipgloss.NewStyle().Foreground(Faded)
)

// Glyphs are the markers drawn in front of a task
type Glyphs struct {
	ScheduledToday string
	Completed      string
	Overdue        string
	DueToday       string
	Scheduled      string
	Deadline       string
}

var (
	NerdGlyphs = Glyphs{
		ScheduledToday: "\U000f00f6",
		Completed:      "\U000f0132",
		Overdue:        "\U000f10b4",
		DueToday:       "\U000f023d",
		Scheduled:      "\U000f00ed",
		Deadline:       "\U000f023b",
	}
	PlainGlyphs = Glyphs{
		ScheduledToday: "*",
		Completed:      "x",
		Overdue:        "!",
		DueToday:       "~",
		Scheduled:      "@",
		Deadline:       "due",
	}
)

const (
	branch = "└─ "
	indent = "   "
)

// LineRenderer formats one task per line
type LineRenderer struct {
	Glyphs Glyphs
	// Styled enables lipgloss styling; plain text otherwise
	Styled bool
	Now    time.Time
}

func NewLineRenderer(nerdFont, styled bool, now time.Time) LineRenderer {
	g := PlainGlyphs
	if nerdFont {
		g = NerdGlyphs
	}
	return LineRenderer{Glyphs: g, Styled: styled, Now: now}
}

func (r LineRenderer) style(s lipgloss.Style, text string) string {
	if !r.Styled || text == "" {
		return text
	}
	return s.Render(text)
}

// Flags returns the status markers of t, in a fixed order
func (r LineRenderer) Flags(t task.Task) string {
	var b strings.Builder
	today := date.Today(r.Now)
	if t.Scheduled != nil && *t.Scheduled == today {
		b.WriteString(r.style(lipgloss.NewStyle().Foreground(ScheduledColor), r.Glyphs.ScheduledToday))
	}
	if t.Completed {
		b.WriteString(r.style(lipgloss.NewStyle().Foreground(DoneColor), r.Glyphs.Completed))
	}
	if t.Deadline != nil {
		switch {
		case !t.Deadline.After(r.Now):
			b.WriteString(r.style(lipgloss.NewStyle().Foreground(OverdueColor), r.Glyphs.Overdue))
		case date.Of(t.Deadline.In(r.Now.Location())) == today:
			b.WriteString(r.style(lipgloss.NewStyle().Foreground(DueTodayColor), r.Glyphs.DueToday))
		}
	}
	return b.String()
}

// Task renders t without tree decoration
func (r LineRenderer) Task(t task.Task, depth int) string {
	var b strings.Builder
	if flags := r.Flags(t); flags != "" {
		b.WriteString(flags + " ")
	}

	title := TaskTitle
	if depth > 0 {
		title = SubTaskTitle
	}
	if t.Completed {
		title = title.Copy().Strikethrough(true)
	}
	b.WriteString(r.style(title, t.Name()))
	if t.Metadata.Details != "" {
		b.WriteString(r.style(TaskDetails, ": "+t.Metadata.Details))
	}

	for _, tag := range t.Tags {
		b.WriteString(" " + r.style(TaskTag, "["+tag+"]"))
	}
	if t.Scheduled != nil {
		b.WriteString(r.style(TaskDivider, " -"+r.Glyphs.Scheduled+" ") + t.Scheduled.String())
	}
	if t.Deadline != nil {
		ddl := t.Deadline.In(r.Now.Location())
		b.WriteString(r.style(TaskDivider, " -"+r.Glyphs.Deadline+" ") + ddl.Format("2006-01-02 15:04"))
	}
	if t.Weight > 1 {
		b.WriteString(" " + r.style(lipgloss.NewStyle().Foreground(WeightColor), strings.Repeat("!", int(t.Weight-1))))
	}
	return b.String()
}

// Line renders t as a tree row. Progress is shown when it has a total.
func (r LineRenderer) Line(t task.Task, depth int, progress task.Progress, hasChildren bool) string {
	s := strings.Repeat(indent, depth) + r.style(TaskDivider, branch) + r.Task(t, depth)
	if hasChildren {
		s += r.style(TaskProgress, fmt.Sprintf(" (%d/%d)", progress.Done, progress.Total))
	}
	return s
}

// Tree renders every line of a materialized forest
func (r LineRenderer) Tree(s *task.Store, lines []query.Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		t, err := s.Get(l.ID)
		if err != nil {
			continue
		}
		hasChildren := len(s.Children(l.ID)) > 0
		out = append(out, r.Line(*t, l.Depth, s.Progress(l.ID), hasChildren))
	}
	return out
}
