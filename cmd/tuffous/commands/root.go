// Package commands implements the tuffous command line.
package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/td0m/tuffous/internal/config"
	"github.com/td0m/tuffous/internal/logger"
	"github.com/td0m/tuffous/internal/selection"
	"github.com/td0m/tuffous/internal/ui"
	"github.com/td0m/tuffous/pkg/persist"
	"github.com/td0m/tuffous/pkg/repo"
	"go.uber.org/zap"
)

var ErrNoStore = errors.New("no task store found, run init first")

// app is shared by every subcommand of one root
type app struct {
	root  string
	plain bool
	now   func() time.Time
}

// env is an opened store
type env struct {
	cfg  config.Config
	log  *zap.Logger
	dir  *persist.Dir
	repo *repo.Repository
}

func (a *app) config() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(a.root)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

// open loads and refreshes the store at the root directory
func (a *app) open() (*env, error) {
	cfg, log, err := a.config()
	if err != nil {
		return nil, err
	}
	dir := persist.InDir(a.root, log)
	if !dir.Exists() {
		return nil, fmt.Errorf("%s: %w", a.root, ErrNoStore)
	}
	r, err := repo.Open(dir, repo.WithLogger(log), repo.WithClock(a.now))
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, dir: dir, repo: r}, nil
}

func (a *app) cache() (*selection.Cache, error) {
	if !persist.InDir(a.root, nil).Exists() {
		return nil, fmt.Errorf("%s: %w", a.root, ErrNoStore)
	}
	return selection.Load(a.root)
}

func (a *app) renderer(e *env) ui.LineRenderer {
	return ui.NewLineRenderer(e.cfg.UI.NerdFont, !a.plain, a.now())
}

func (e *env) close() {
	_ = logger.Sync(e.log)
}

// NewRootCmd creates the tuffous command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}
	cmd := &cobra.Command{
		Use:           "tuffous",
		Short:         "A to-do manager for the command line",
		Long:          "Tasks nest under any number of parents and are stored one file each under .tuffous/todos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&a.root, "dir", ".", "Directory holding the .tuffous store")
	cmd.PersistentFlags().BoolVar(&a.plain, "plain", false, "Print task lines without styling")

	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newNewCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newEditCmd(a))
	cmd.AddCommand(newCompleteCmd(a))
	cmd.AddCommand(newFatherCmd(a))
	cmd.AddCommand(newChildCmd(a))
	cmd.AddCommand(newRemoveCmd(a))
	cmd.AddCommand(newCleanCacheCmd(a))
	return cmd
}
