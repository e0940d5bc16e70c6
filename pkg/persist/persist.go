package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/td0m/tuffous/pkg/task"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Persistor interface {
	Save([]task.Task) error
	Load() ([]task.Task, error)
	Delete(task.ID) error
}

var (
	_ Persistor = &Dir{}
	_ Persistor = &Memory{}
)

const (
	storeDir = ".tuffous"
	tasksDir = "todos"
)

// Dir keeps one JSON file per task under <root>/.tuffous/todos
type Dir struct {
	root string
	log  *zap.Logger
}

func InDir(root string, log *zap.Logger) *Dir {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dir{root: root, log: log}
}

// StorePath is the directory holding the store's own files
func StorePath(root string) string {
	return filepath.Join(root, storeDir)
}

func (d Dir) Path() string {
	return filepath.Join(d.root, storeDir, tasksDir)
}

func (d Dir) file(id task.ID) string {
	return filepath.Join(d.Path(), id.String()+".json")
}

// Init creates the store directories. Existing directories are fine.
func (d Dir) Init() error {
	if err := os.MkdirAll(d.Path(), 0755); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	return nil
}

// Exists reports whether Init has been run for root
func (d Dir) Exists() bool {
	info, err := os.Stat(d.Path())
	return err == nil && info.IsDir()
}

// Save writes every task to its own file. A failed write does not stop the
// others; all failures are returned together.
func (d Dir) Save(ts []task.Task) error {
	var errs error
	for _, t := range ts {
		bs, err := encode(t)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := os.WriteFile(d.file(t.ID), bs, 0660); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("write task %s: %w", t.ID, err))
		}
	}
	return errs
}

// Load reads every file in the task directory. Files that are not valid
// tasks are skipped.
func (d Dir) Load() ([]task.Task, error) {
	entries, err := os.ReadDir(d.Path())
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	tasks := []task.Task{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(d.Path(), e.Name())
		bs, err := os.ReadFile(path)
		if err != nil {
			d.log.Debug("skipping unreadable file", zap.String("path", path), zap.Error(err))
			continue
		}
		t, err := decode(bs)
		if err != nil {
			d.log.Debug("skipping invalid task file", zap.String("path", path), zap.Error(err))
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Delete removes the task's file. A file that is already gone is not an error.
func (d Dir) Delete(id task.ID) error {
	err := os.Remove(d.file(id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}
