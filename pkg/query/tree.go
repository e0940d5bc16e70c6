package query

import "github.com/td0m/tuffous/pkg/task"

// Line is one row of a rendered forest
type Line struct {
	ID    task.ID
	Depth int
}

// Tree arranges a result as a forest. Roots are members without a parent in
// the result; below them, children in the result follow their parent one
// level deeper. A task with several parents in the result appears under each.
func Tree(s *task.Store, r *Result) []Line {
	children := map[task.ID][]task.ID{}
	var roots []task.ID
	for _, id := range s.IDs() {
		if !r.Has(id) {
			continue
		}
		t, err := s.Get(id)
		if err != nil {
			continue
		}
		isRoot := true
		for _, p := range t.Parents {
			if r.Has(p) {
				children[p] = append(children[p], id)
				isRoot = false
			}
		}
		if isRoot {
			roots = append(roots, id)
		}
	}

	out := []Line{}
	path := task.Set{}
	var dfs func(id task.ID, depth int)
	dfs = func(id task.ID, depth int) {
		if path.Has(id) {
			return
		}
		path.Add(id)
		defer delete(path, id)
		out = append(out, Line{ID: id, Depth: depth})
		for _, c := range children[id] {
			dfs(c, depth+1)
		}
	}
	for _, root := range roots {
		dfs(root, 0)
	}
	return out
}
