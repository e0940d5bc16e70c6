package task

// Weight sums the weight of the leaves under id. A task without children is
// its own leaf. With onlyCompleted, pending leaves count for nothing and
// pending children are skipped along with everything below them.
func (s *Store) Weight(id ID, onlyCompleted bool) uint {
	w := weigher{
		store:         s,
		children:      s.childIndex(),
		onlyCompleted: onlyCompleted,
		memo:          map[ID]uint{},
		visiting:      Set{},
	}
	return w.weight(id)
}

type weigher struct {
	store         *Store
	children      map[ID][]ID
	onlyCompleted bool
	memo          map[ID]uint
	visiting      Set
}

func (w *weigher) weight(id ID) uint {
	t, ok := w.store.nodes[id]
	if !ok {
		return 0
	}
	if v, ok := w.memo[id]; ok {
		return v
	}
	// a cycle can only come from data written outside Link
	if w.visiting.Has(id) {
		return 0
	}
	w.visiting.Add(id)
	defer delete(w.visiting, id)

	var sum uint
	children := w.children[id]
	if len(children) == 0 {
		if t.Completed || !w.onlyCompleted {
			sum = t.Weight
		}
	}
	for _, c := range children {
		child := w.store.nodes[c]
		if child.Completed || !w.onlyCompleted {
			sum += w.weight(c)
		}
	}
	w.memo[id] = sum
	return sum
}

// Progress is the completed and total leaf weight under a task
type Progress struct {
	Done  uint
	Total uint
}

func (s *Store) Progress(id ID) Progress {
	return Progress{
		Done:  s.Weight(id, true),
		Total: s.Weight(id, false),
	}
}

// Ratio returns Done/Total, or false when there is nothing to measure
func (p Progress) Ratio() (float64, bool) {
	if p.Total == 0 {
		return 0, false
	}
	return float64(p.Done) / float64(p.Total), true
}

func (p Progress) Complete() bool {
	return p.Total > 0 && p.Done == p.Total
}
