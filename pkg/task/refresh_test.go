package task

import (
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/tuffous/pkg/task/date"
)

func TestStore_Refresh(t *testing.T) {
	now := time.Date(2023, time.May, 10, 12, 0, 0, 0, time.Local)
	today := date.Of(now)

	t.Run("drops dangling parents", func(t *testing.T) {
		is := is.New(t)
		s, ids := newTestStore(t, "a", "b")
		a, b := ids[0], ids[1]
		tb, _ := s.Get(b)
		tb.Parents = []ID{7, a, 8, a, b, 9}

		report := s.Refresh(now)
		is.Equal(tb.Parents, []ID{a})
		is.Equal(report.DanglingRemoved, 5)
		is.True(report.Changed())
	})

	t.Run("moves stale schedules to today", func(t *testing.T) {
		is := is.New(t)
		s, ids := newTestStore(t, "stale", "done", "future")
		past := today.AddDays(-3)
		future := today.AddDays(3)
		stale, _ := s.Get(ids[0])
		done, _ := s.Get(ids[1])
		later, _ := s.Get(ids[2])
		stale.Scheduled = &past
		done.Scheduled = &past
		done.Completed = true
		later.Scheduled = &future

		report := s.Refresh(now)
		is.Equal(report.Rescheduled, 1)
		is.Equal(*stale.Scheduled, today)
		is.Equal(*done.Scheduled, past)
		is.Equal(*later.Scheduled, future)
	})

	t.Run("is idempotent", func(t *testing.T) {
		is := is.New(t)
		s, ids := newTestStore(t, "a", "b", "c")
		past := today.AddDays(-1)
		tc, _ := s.Get(ids[2])
		tc.Parents = []ID{ids[0], 99}
		tc.Scheduled = &past

		s.Refresh(now)
		first := s.Tasks()
		report := s.Refresh(now)
		is.True(!report.Changed())
		is.Equal(s.Tasks(), first)
	})
}

func TestStore_RemoveParent(t *testing.T) {
	is := is.New(t)
	s, ids := newTestStore(t, "p", "c")
	p, c := ids[0], ids[1]
	is.NoErr(s.Link(p, c))

	s.Remove(p, time.Now())
	s.Refresh(time.Now())
	child, err := s.Get(c)
	is.NoErr(err)
	is.True(!child.HasParent(p))
}
