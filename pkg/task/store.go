package task

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrIDAlreadyExists = errors.New("task with the given ID already exists")
	ErrNotFound        = errors.New("not found")
)

// Store holds every loaded task, keyed by ID.
// Links live on the child as a list of parent IDs, so the store is the only
// place the graph can be traversed from.
type Store struct {
	nodes map[ID]*Task
	// insertion order, kept so iteration is stable within a run
	order []ID
}

func NewStore() *Store {
	return &Store{
		nodes: map[ID]*Task{},
	}
}

// Add inserts a copy of t
func (s *Store) Add(t Task) error {
	if _, found := s.nodes[t.ID]; found {
		return fmt.Errorf("add %s: %w", t.ID, ErrIDAlreadyExists)
	}
	c := t.Clone()
	s.nodes[t.ID] = &c
	s.order = append(s.order, t.ID)
	return nil
}

// Create adds a new task named name
func (s *Store) Create(name string, now time.Time) (*Task, error) {
	t := New(name, now)
	if err := s.Add(t); err != nil {
		return nil, err
	}
	return s.nodes[t.ID], nil
}

// Get returns the stored task. Changes made through the pointer are changes
// to the store.
func (s *Store) Get(id ID) (*Task, error) {
	t, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return t, nil
}

func (s *Store) Has(id ID) bool {
	_, ok := s.nodes[id]
	return ok
}

func (s *Store) Len() int {
	return len(s.order)
}

// IDs returns every ID in insertion order
func (s *Store) IDs() []ID {
	return append([]ID{}, s.order...)
}

// Tasks returns copies of every task in insertion order
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.order))
	for i, id := range s.order {
		out[i] = s.nodes[id].Clone()
	}
	return out
}

// Remove deletes the task and repairs the links that pointed at it.
// Removing an unknown ID only runs the repair.
func (s *Store) Remove(id ID, now time.Time) (bool, RefreshReport) {
	_, found := s.nodes[id]
	if found {
		delete(s.nodes, id)
		for i, o := range s.order {
			if o == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	return found, s.Refresh(now)
}
