package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/tuffous/pkg/query"
	"github.com/td0m/tuffous/pkg/task"
	"github.com/td0m/tuffous/pkg/task/date"
)

var now = time.Date(2021, 4, 21, 15, 4, 0, 0, time.UTC)

func plain() LineRenderer {
	return NewLineRenderer(false, false, now)
}

func TestLineRenderer_Task(t *testing.T) {
	is := is.New(t)

	tk := task.New("Write report", now)
	tk.Metadata.Details = "quarterly"
	tk.AddTag("work")
	tk.AddTag("urgent")
	tk.Weight = 3
	is.Equal(plain().Task(tk, 0), "Write report: quarterly [work] [urgent] !!")
}

func TestLineRenderer_Flags(t *testing.T) {
	today := date.Today(now)
	past := now.Add(-time.Hour)
	later := now.Add(time.Hour)
	nextWeek := now.AddDate(0, 0, 7)

	tests := []struct {
		name string
		edit func(*task.Task)
		want string
	}{
		{"none", func(*task.Task) {}, ""},
		{"scheduled today", func(t *task.Task) { t.Scheduled = &today }, "*"},
		{"completed", func(t *task.Task) { t.Completed = true }, "x"},
		{"overdue", func(t *task.Task) { t.Deadline = &past }, "!"},
		{"due later today", func(t *task.Task) { t.Deadline = &later }, "~"},
		{"due next week", func(t *task.Task) { t.Deadline = &nextWeek }, ""},
		{"all at once", func(t *task.Task) {
			t.Scheduled = &today
			t.Completed = true
			t.Deadline = &past
		}, "*x!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			tk := task.New("a", now)
			tt.edit(&tk)
			is.Equal(plain().Flags(tk), tt.want)
		})
	}
}

func TestLineRenderer_Dates(t *testing.T) {
	is := is.New(t)

	tk := task.New("Pay rent", now)
	sched := date.New(2021, 4, 30)
	ddl := time.Date(2021, 5, 1, 9, 30, 0, 0, time.UTC)
	tk.Scheduled = &sched
	tk.Deadline = &ddl
	is.Equal(plain().Task(tk, 0), "Pay rent -@ 2021-04-30 -due 2021-05-01 09:30")
}

func TestLineRenderer_Tree(t *testing.T) {
	is := is.New(t)

	s := task.NewStore()
	parent, err := s.Create("Groceries", now)
	is.NoErr(err)
	milk, err := s.Create("Milk", now.Add(time.Second))
	is.NoErr(err)
	eggs, err := s.Create("Eggs", now.Add(2*time.Second))
	is.NoErr(err)
	is.NoErr(s.Link(parent.ID, milk.ID))
	is.NoErr(s.Link(parent.ID, eggs.ID))
	milk.Completed = true

	r := query.Run(s, query.Filter{Logged: query.Either, Now: now}, query.DefaultLimit)
	lines := plain().Tree(s, query.Tree(s, r))
	is.Equal(len(lines), 3)
	is.Equal(lines[0], "└─ Groceries (1/2)")
	is.Equal(lines[1], "   └─ x Milk")
	is.Equal(lines[2], "   └─ Eggs")
}

func TestLineRenderer_Styled(t *testing.T) {
	is := is.New(t)

	tk := task.New("Styled", now)
	out := NewLineRenderer(true, true, now).Line(tk, 1, task.Progress{}, false)
	is.True(strings.Contains(out, "Styled"))
	is.True(strings.HasPrefix(out, indent))
}
