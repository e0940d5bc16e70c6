package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/tuffous/internal/config"
	"github.com/td0m/tuffous/internal/logger"
	"github.com/td0m/tuffous/pkg/persist"
	"github.com/td0m/tuffous/pkg/repo"
)

var (
	root = flag.String("dir", ".", "Directory holding the .tuffous store")
)

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*root)
	check(err)
	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	check(err)
	defer logger.Sync(log)

	dir := persist.InDir(*root, log)
	check(dir.Init())
	r, err := repo.Open(dir, repo.WithLogger(log))
	check(err)

	p := tea.NewProgram(newApp(r, cfg, log))
	p.EnterAltScreen()
	defer p.ExitAltScreen()

	check(p.Start())
}
