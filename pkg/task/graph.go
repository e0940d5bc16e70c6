package task

import (
	"errors"
	"fmt"
)

var (
	ErrSelfLink  = errors.New("task cannot be its own parent")
	ErrCycle     = errors.New("link would create a cycle")
	ErrRedundant = errors.New("task is already a descendant")
)

// LinkError describes a rejected change to the graph
type LinkError struct {
	Op     string
	Parent ID
	Child  ID
	Kind   error
}

func (e *LinkError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s -> %s: %s", e.Op, e.Parent, e.Child, e.Kind)
}

func (e *LinkError) Unwrap() error { return e.Kind }

// Ancestors returns every task reachable by following parent links.
// Unknown IDs, and parents that are no longer loaded, contribute nothing.
func (s *Store) Ancestors(id ID) Set {
	out := Set{}
	t, ok := s.nodes[id]
	if !ok {
		return out
	}
	stack := append([]ID{}, t.Parents...)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent, ok := s.nodes[p]
		if !ok || out.Has(p) {
			continue
		}
		out.Add(p)
		stack = append(stack, parent.Parents...)
	}
	return out
}

// Descendants returns every task that has id among its ancestors
func (s *Store) Descendants(id ID) Set {
	out := Set{}
	if !s.Has(id) {
		return out
	}
	children := s.childIndex()
	queue := append([]ID{}, children[id]...)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == id || out.Has(c) {
			continue
		}
		out.Add(c)
		queue = append(queue, children[c]...)
	}
	return out
}

// Children returns the tasks that list id as a direct parent, in store order
func (s *Store) Children(id ID) []ID {
	out := []ID{}
	for _, c := range s.order {
		if s.nodes[c].HasParent(id) {
			out = append(out, c)
		}
	}
	return out
}

// childIndex inverts the parent lists in one pass over the store
func (s *Store) childIndex() map[ID][]ID {
	index := make(map[ID][]ID, len(s.nodes))
	for _, c := range s.order {
		for _, p := range s.nodes[c].Parents {
			index[p] = append(index[p], c)
		}
	}
	return index
}

// CanLink reports whether parent may become a parent of child
func (s *Store) CanLink(parent, child ID) bool {
	return s.checkLink(parent, child) == nil
}

func (s *Store) checkLink(parent, child ID) error {
	switch {
	case parent == child:
		return ErrSelfLink
	case s.Ancestors(parent).Has(child):
		return ErrCycle
	case s.Descendants(parent).Has(child):
		return ErrRedundant
	}
	return nil
}

// Link makes child depend on parent
func (s *Store) Link(parent, child ID) error {
	if !s.Has(parent) {
		return &LinkError{Op: "link", Parent: parent, Child: child, Kind: ErrNotFound}
	}
	c, ok := s.nodes[child]
	if !ok {
		return &LinkError{Op: "link", Parent: parent, Child: child, Kind: ErrNotFound}
	}
	if err := s.checkLink(parent, child); err != nil {
		return &LinkError{Op: "link", Parent: parent, Child: child, Kind: err}
	}
	if !c.HasParent(parent) {
		c.Parents = append(c.Parents, parent)
	}
	return nil
}

// Unlink removes the link between parent and child if there is one
func (s *Store) Unlink(parent, child ID) error {
	c, ok := s.nodes[child]
	if !ok {
		return &LinkError{Op: "unlink", Parent: parent, Child: child, Kind: ErrNotFound}
	}
	c.removeParent(parent)
	return nil
}

// ToggleLink links the pair, or unlinks it when already linked.
// It reports whether the pair is linked afterwards.
func (s *Store) ToggleLink(parent, child ID) (bool, error) {
	c, ok := s.nodes[child]
	if !ok {
		return false, &LinkError{Op: "toggle", Parent: parent, Child: child, Kind: ErrNotFound}
	}
	if c.HasParent(parent) {
		return false, s.Unlink(parent, child)
	}
	if err := s.Link(parent, child); err != nil {
		return false, err
	}
	return true, nil
}
