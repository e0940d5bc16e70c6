// Package query selects tasks from a store and arranges them for display.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/td0m/tuffous/pkg/task"
	"github.com/td0m/tuffous/pkg/task/date"
)

// Logged selects tasks by completion
type Logged int

const (
	// Pending matches tasks that are not completed
	Pending Logged = iota
	// Completed matches completed tasks only
	Completed
	// Either ignores completion
	Either
)

func ParseLogged(s string) (Logged, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "pending":
		return Pending, nil
	case "true", "logged", "completed":
		return Completed, nil
	case "all", "any", "either":
		return Either, nil
	}
	return Pending, fmt.Errorf("invalid logged state %q, expected true, false or all", s)
}

func (l Logged) String() string {
	switch l {
	case Completed:
		return "true"
	case Either:
		return "all"
	}
	return "false"
}

// Range is an inclusive span of days. A nil bound is open.
type Range struct {
	From *date.Date
	To   *date.Date
}

func (r Range) Contains(d date.Date) bool {
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && d.After(*r.To) {
		return false
	}
	return true
}

// Filter is a set of predicates. Zero values are ignored, except Logged, whose
// zero value hides completed tasks.
type Filter struct {
	Logged Logged

	// Today requires the task to be scheduled for the day Now falls on
	Today          bool
	Scheduled      *date.Date
	ScheduledRange *Range
	Deadline       *date.Date
	DeadlineRange  *Range
	// Tags must all be present; a tag carrying task.TagMarker must be absent
	Tags []string
	// Name is matched case-insensitively as a substring
	Name string

	Now time.Time
}

// Lenient reports whether t passes the completion predicate alone
func (f Filter) Lenient(t task.Task) bool {
	switch f.Logged {
	case Completed:
		return t.Completed
	case Either:
		return true
	}
	return !t.Completed
}

// Match reports whether t passes every predicate
func (f Filter) Match(t task.Task) bool {
	if !f.Lenient(t) {
		return false
	}
	if f.Today {
		if t.Scheduled == nil || *t.Scheduled != date.Today(f.now()) {
			return false
		}
	}
	if f.Scheduled != nil {
		if t.Scheduled == nil || *t.Scheduled != *f.Scheduled {
			return false
		}
	}
	if f.ScheduledRange != nil {
		if t.Scheduled == nil || !f.ScheduledRange.Contains(*t.Scheduled) {
			return false
		}
	}
	if f.Deadline != nil {
		if t.Deadline == nil || date.Of(*t.Deadline) != *f.Deadline {
			return false
		}
	}
	if f.DeadlineRange != nil {
		if t.Deadline == nil || !f.DeadlineRange.Contains(date.Of(*t.Deadline)) {
			return false
		}
	}
	for _, arg := range f.Tags {
		tag, negated := task.ParseTagOp(arg)
		if t.HasTag(tag) == negated {
			return false
		}
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(t.Name()), strings.ToLower(f.Name)) {
		return false
	}
	return true
}

func (f Filter) now() time.Time {
	if f.Now.IsZero() {
		return time.Now()
	}
	return f.Now
}
