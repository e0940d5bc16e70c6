package task

import (
	"time"

	"github.com/td0m/tuffous/pkg/task/date"
)

// RefreshReport counts the repairs made by Refresh
type RefreshReport struct {
	DanglingRemoved int
	Rescheduled     int
}

func (r RefreshReport) Changed() bool {
	return r.DanglingRemoved > 0 || r.Rescheduled > 0
}

// Refresh repairs every task in place: parent links to tasks that are not
// loaded (or repeated, or pointing at the task itself) are dropped, and
// pending tasks scheduled before today are moved to today.
// Running it twice in a row changes nothing the second time.
func (s *Store) Refresh(now time.Time) RefreshReport {
	var report RefreshReport
	today := date.Today(now)
	for _, id := range s.order {
		t := s.nodes[id]
		report.DanglingRemoved += s.repairParents(t)
		if !t.Completed && t.Scheduled != nil && t.Scheduled.Before(today) {
			d := today
			t.Scheduled = &d
			report.Rescheduled++
		}
	}
	return report
}

// repairParents filters the parent list until every entry is a loaded task
// that appears once
func (s *Store) repairParents(t *Task) int {
	kept := t.Parents[:0]
	seen := Set{}
	removed := 0
	for _, p := range t.Parents {
		if p == t.ID || seen.Has(p) || !s.Has(p) {
			removed++
			continue
		}
		seen.Add(p)
		kept = append(kept, p)
	}
	t.Parents = kept
	return removed
}
