package query

import (
	"github.com/td0m/tuffous/pkg/task"
)

// DefaultLimit caps the size of a result
const DefaultLimit = 1024

// Result is the set of tasks selected by a filter, in the order they were added
type Result struct {
	IDs   []task.ID
	set   task.Set
	limit int
	// Truncated is set when the limit stopped the scan
	Truncated bool
}

func newResult(limit int) *Result {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Result{set: task.Set{}, limit: limit}
}

func (r *Result) Has(id task.ID) bool {
	return r.set.Has(id)
}

func (r *Result) Len() int {
	return len(r.IDs)
}

// add reports false once the result is full
func (r *Result) add(id task.ID) bool {
	if r.set.Has(id) {
		return true
	}
	if len(r.IDs) >= r.limit {
		r.Truncated = true
		return false
	}
	r.set.Add(id)
	r.IDs = append(r.IDs, id)
	return true
}

// Run selects every task matching f together with the context needed to
// display it: all of its ancestors, and the descendants that pass f's
// completion predicate.
func Run(s *task.Store, f Filter, limit int) *Result {
	r := newResult(limit)
	for _, id := range s.IDs() {
		t, err := s.Get(id)
		if err != nil || !f.Match(*t) {
			continue
		}
		if !r.add(id) {
			return r
		}
		for _, a := range s.Ancestors(id).Sorted() {
			if !r.add(a) {
				return r
			}
		}
		for _, d := range s.Descendants(id).Sorted() {
			child, err := s.Get(d)
			if err != nil || !f.Lenient(*child) {
				continue
			}
			if !r.add(d) {
				return r
			}
		}
	}
	return r
}
