package query

import (
	"strconv"
	"strings"

	"github.com/td0m/tuffous/pkg/task"
)

// ParseSelection reads 1-based positions such as "1, 3 5-7" out of a listing
// of size lines. Repeated positions are kept once; tokens that are not
// positions, and positions past size, are ignored.
func ParseSelection(s string, size int) []int {
	out := []int{}
	seen := map[int]bool{}
	push := func(n int) {
		if n > 0 && n <= size && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, tok := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		if n, err := strconv.Atoi(tok); err == nil {
			push(n)
			continue
		}
		from, to, ok := strings.Cut(tok, "-")
		if !ok {
			continue
		}
		a, errA := strconv.Atoi(from)
		b, errB := strconv.Atoi(to)
		if errA != nil || errB != nil || a <= 0 {
			continue
		}
		for n := a; n <= min(b, size); n++ {
			push(n)
		}
	}
	return out
}

// Pick returns the IDs at the given 1-based positions, skipping positions
// outside lines and IDs already picked
func Pick(lines []Line, positions []int) []task.ID {
	out := []task.ID{}
	seen := task.Set{}
	for _, p := range positions {
		if p < 1 || p > len(lines) {
			continue
		}
		id := lines[p-1].ID
		if seen.Has(id) {
			continue
		}
		seen.Add(id)
		out = append(out, id)
	}
	return out
}
