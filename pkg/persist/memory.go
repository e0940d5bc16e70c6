package persist

import (
	"sort"

	"github.com/td0m/tuffous/pkg/task"
	"go.uber.org/multierr"
)

// Memory persists encoded tasks in a map. It goes through the same encoding
// as Dir, so what it returns is what a file would have held.
type Memory struct {
	files map[task.ID][]byte
}

func InMemory() *Memory {
	return &Memory{files: map[task.ID][]byte{}}
}

// Save stores every valid task; failures are returned together
func (m *Memory) Save(ts []task.Task) error {
	var errs error
	for _, t := range ts {
		bs, err := encode(t)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		m.files[t.ID] = bs
	}
	return errs
}

// Load returns the stored tasks ordered by ID
func (m *Memory) Load() ([]task.Task, error) {
	ids := make([]task.ID, 0, len(m.files))
	for id := range m.files {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	tasks := make([]task.Task, 0, len(ids))
	for _, id := range ids {
		t, err := decode(m.files[id])
		if err != nil {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (m *Memory) Delete(id task.ID) error {
	delete(m.files, id)
	return nil
}

func (m *Memory) Len() int {
	return len(m.files)
}
