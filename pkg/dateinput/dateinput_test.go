package dateinput

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
	"github.com/td0m/tuffous/pkg/task/date"
)

func TestDescribe(t *testing.T) {
	today := date.New(2021, 4, 21)
	tests := []struct {
		days int
		want string
	}{
		{0, "today"},
		{1, "tomorrow"},
		{-1, "yesterday"},
		{-3, "3 days ago"},
		{5, "in 5 days"},
		{14, "in 2 weeks"},
		{21, "in 3 weeks"},
		{40, "in 1 month"},
		{100, "in 3 months"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			is := is.New(t)
			is.Equal(Describe(today.AddDays(tt.days), today), tt.want)
		})
	}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModel(t *testing.T) {
	now := time.Date(2021, 4, 21, 15, 4, 0, 0, time.UTC)
	newModel := func() Model {
		m := NewModel()
		m.Now = func() time.Time { return now }
		return m
	}

	t.Run("empty clears", func(t *testing.T) {
		is := is.New(t)
		m := newModel()
		is.True(m.Valid())
		is.True(m.Value() == nil)
	})
	t.Run("parses as typed", func(t *testing.T) {
		is := is.New(t)
		m := typeString(newModel(), "tomorrow")
		is.True(m.Valid())
		is.Equal(*m.Value(), date.New(2021, 4, 22))
	})
	t.Run("invalid", func(t *testing.T) {
		is := is.New(t)
		m := typeString(newModel(), "someday")
		is.True(!m.Valid())
		is.True(m.Value() == nil)
	})
	t.Run("set value", func(t *testing.T) {
		is := is.New(t)
		m := newModel()
		d := date.New(2021, 5, 1)
		m.SetValue(&d)
		is.Equal(*m.Value(), d)
		m.SetValue(nil)
		is.True(m.Value() == nil)
		is.True(m.Valid())
	})
}
