package task

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestNew(t *testing.T) {
	is := is.New(t)

	now := time.Date(2023, time.May, 1, 9, 30, 0, 0, time.UTC)
	task := New("Groceries", now)
	is.Equal(task.Name(), "Groceries")
	is.Equal(task.Weight, uint(1))
	is.True(!task.Completed)
	is.Equal(len(task.Parents), 0)
	is.Equal(len(task.Tags), 0)
	is.Equal(task.Metadata.Details, "")
	is.Equal(task.Created, now)
	is.NoErr(task.Validate())
}

func TestNewID(t *testing.T) {
	is := is.New(t)

	now := time.Date(2023, time.May, 1, 9, 30, 0, 0, time.UTC)
	is.Equal(NewID("a", now), NewID("a", now))
	is.Equal(NewID("a", now), NewID("a", now.In(time.FixedZone("X", 3600))))
	is.True(NewID("a", now) != NewID("b", now))
	is.True(NewID("a", now) != NewID("a", now.Add(time.Nanosecond)))

	id := NewID("a", now)
	parsed, err := ParseID(id.String())
	is.NoErr(err)
	is.Equal(parsed, id)

	_, err = ParseID("not a number")
	is.True(err != nil)
}

func TestTask_Equal(t *testing.T) {
	is := is.New(t)

	a := New("a", time.Now())
	b := a.Clone()
	b.Metadata.Name = "renamed"
	b.Completed = true
	is.True(a.Equal(b))
	is.True(!a.Equal(New("a", a.Created.Add(time.Second))))
}

func TestTask_Tags(t *testing.T) {
	t.Run("adding twice is a no-op", func(t *testing.T) {
		is := is.New(t)
		task := New("a", time.Now())
		task.AddTag("urgent")
		task.AddTag("urgent")
		task.AddTag("")
		is.Equal(task.Tags, []string{"urgent"})
		is.NoErr(task.Validate())
	})
	t.Run("remove", func(t *testing.T) {
		is := is.New(t)
		task := New("a", time.Now())
		task.AddTag("a")
		task.AddTag("b")
		task.RemoveTag("a")
		task.RemoveTag("missing")
		is.Equal(task.Tags, []string{"b"})
	})
	t.Run("marker unbinds", func(t *testing.T) {
		is := is.New(t)
		task := New("a", time.Now())
		task.ApplyTagOp("home")
		task.ApplyTagOp("work")
		task.ApplyTagOp("home!")
		task.ApplyTagOp("!work")
		is.Equal(len(task.Tags), 0)
	})
}

func TestParseTagOp(t *testing.T) {
	tests := []struct {
		in      string
		tag     string
		negated bool
	}{
		{"urgent", "urgent", false},
		{"!urgent", "urgent", true},
		{"urgent!", "urgent", true},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			is := is.New(t)
			tag, negated := ParseTagOp(tt.in)
			is.Equal(tag, tt.tag)
			is.Equal(negated, tt.negated)
		})
	}
}

func TestTask_Validate(t *testing.T) {
	t.Run("zero weight", func(t *testing.T) {
		is := is.New(t)
		task := New("a", time.Now())
		task.Weight = 0
		is.True(task.Validate() != nil)
	})
	t.Run("duplicate tags", func(t *testing.T) {
		is := is.New(t)
		task := New("a", time.Now())
		task.Tags = []string{"x", "x"}
		is.True(task.Validate() != nil)
	})
	t.Run("duplicate parents", func(t *testing.T) {
		is := is.New(t)
		task := New("a", time.Now())
		task.Parents = []ID{1, 1}
		is.True(task.Validate() != nil)
	})
}

func TestTask_Clone(t *testing.T) {
	is := is.New(t)

	deadline := time.Now()
	task := New("a", time.Now())
	task.Deadline = &deadline
	task.Parents = []ID{1}
	c := task.Clone()
	c.Parents[0] = 2
	*c.Deadline = deadline.Add(time.Hour)
	is.Equal(task.Parents, []ID{1})
	is.Equal(*task.Deadline, deadline)
}

func TestTask_Normalize(t *testing.T) {
	is := is.New(t)

	tk := Task{Parents: []ID{1, 2, 1}, Tags: []string{"a", "", "b", "a"}, Weight: 1}
	is.True(tk.Validate() != nil)
	tk.Normalize()
	is.Equal(tk.Parents, []ID{1, 2})
	is.Equal(tk.Tags, []string{"a", "b"})
	is.NoErr(tk.Validate())

	var empty Task
	empty.Normalize()
	is.Equal(empty.Parents, []ID{})
	is.Equal(empty.Tags, []string{})
}
