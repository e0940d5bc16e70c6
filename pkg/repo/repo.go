// Package repo ties the in-memory task store to its persistence.
package repo

import (
	"fmt"
	"time"

	"github.com/td0m/tuffous/pkg/persist"
	"github.com/td0m/tuffous/pkg/task"
	"go.uber.org/zap"
)

// Repository owns every task of one store for the length of a run
type Repository struct {
	*task.Store

	persist persist.Persistor
	log     *zap.Logger
	now     func() time.Time
}

type Option func(*Repository)

func WithLogger(log *zap.Logger) Option {
	return func(r *Repository) { r.log = log }
}

// WithClock replaces time.Now, which decides what "today" is during a refresh
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

func New(p persist.Persistor, opts ...Option) *Repository {
	r := &Repository{
		Store:   task.NewStore(),
		persist: p,
		log:     zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates a repository and loads it
func Open(p persist.Persistor, opts ...Option) (*Repository, error) {
	r := New(p, opts...)
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) Now() time.Time {
	return r.now()
}

// Load replaces the in-memory tasks with the persisted ones and refreshes them
func (r *Repository) Load() error {
	tasks, err := r.persist.Load()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	s := task.NewStore()
	for _, t := range tasks {
		if err := s.Add(t); err != nil {
			r.log.Warn("skipping duplicate task", zap.Stringer("id", t.ID), zap.Error(err))
		}
	}
	r.Store = s
	r.Refresh()
	r.log.Debug("loaded tasks", zap.Int("count", s.Len()))
	return nil
}

// Save persists every task
func (r *Repository) Save() error {
	if err := r.persist.Save(r.Tasks()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (r *Repository) Refresh() task.RefreshReport {
	report := r.Store.Refresh(r.now())
	if report.Changed() {
		r.log.Debug("refreshed tasks",
			zap.Int("dangling_removed", report.DanglingRemoved),
			zap.Int("rescheduled", report.Rescheduled),
		)
	}
	return report
}

// Remove deletes the task from memory and storage, then repairs the rest.
// Failing to delete the file is logged, not returned.
func (r *Repository) Remove(id task.ID) bool {
	found, report := r.Store.Remove(id, r.now())
	if report.Changed() {
		r.log.Debug("repaired links after removal", zap.Stringer("id", id), zap.Int("dangling_removed", report.DanglingRemoved))
	}
	if err := r.persist.Delete(id); err != nil {
		r.log.Warn("could not delete task file", zap.Stringer("id", id), zap.Error(err))
	}
	return found
}
