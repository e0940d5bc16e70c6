// Package selection keeps the scratch file used to link tasks in two steps:
// first pick a father, then pick its children, in separate invocations.
package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/td0m/tuffous/pkg/persist"
	"github.com/td0m/tuffous/pkg/task"
	"go.uber.org/multierr"
)

const FileName = "cache.json"

// Cache is the pending father/children pick
type Cache struct {
	Father   *task.ID  `json:"father"`
	Children []task.ID `json:"child"`

	path string
}

func Path(root string) string {
	return filepath.Join(persist.StorePath(root), FileName)
}

// Load reads the cache of the store at root. A missing file is an empty cache.
func Load(root string) (*Cache, error) {
	c := &Cache{Children: []task.ID{}, path: Path(root)}
	bs, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	if err := json.Unmarshal(bs, c); err != nil {
		return nil, fmt.Errorf("parse selection: %w", err)
	}
	if c.Children == nil {
		c.Children = []task.ID{}
	}
	return c, nil
}

func (c *Cache) Save() error {
	bs, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, bs, 0660); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}

func (c *Cache) Clean() {
	c.Father = nil
	c.Children = []task.ID{}
}

func (c *Cache) SetFather(id task.ID) {
	c.Father = &id
}

// AddChildren appends ids not already picked
func (c *Cache) AddChildren(ids ...task.ID) {
	for _, id := range ids {
		dup := false
		for _, x := range c.Children {
			if x == id {
				dup = true
				break
			}
		}
		if !dup {
			c.Children = append(c.Children, id)
		}
	}
}

// Ready reports whether both halves of the pick are present
func (c *Cache) Ready() bool {
	return c.Father != nil && len(c.Children) > 0
}

// Result is the outcome of toggling one child's link to the father
type Result struct {
	Child  task.ID
	Linked bool
}

// Process toggles the link between the father and every child once both are
// picked, then clears the cache. Links that cannot be made are returned
// together and do not stop the others.
func (c *Cache) Process(s *task.Store) ([]Result, error) {
	if !c.Ready() {
		return nil, nil
	}
	var errs error
	out := []Result{}
	for _, child := range c.Children {
		linked, err := s.ToggleLink(*c.Father, child)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, Result{Child: child, Linked: linked})
	}
	c.Clean()
	return out, errs
}
