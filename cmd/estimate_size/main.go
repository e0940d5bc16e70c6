package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/td0m/tuffous/pkg/persist"
	"github.com/td0m/tuffous/pkg/repo"
	"github.com/td0m/tuffous/pkg/task"
)

var (
	years  = flag.Int("years", 2, "Years of tasks to generate")
	perDay = flag.Int("per-day", 30, "Tasks created per day")
	fanout = flag.Int("fanout", 10, "Children per parent task")
)

func main() {
	flag.Parse()
	total := 365 * *perDay * *years

	root, err := os.MkdirTemp("", "tuffous-estimate-")
	check(err)
	defer os.RemoveAll(root)

	dir := persist.InDir(root, nil)
	check(dir.Init())

	r := repo.New(dir)
	start := time.Date(2021, 1, 1, 8, 0, 0, 0, time.UTC)
	var parent task.ID
	for i := 0; i < total; i++ {
		created := start.Add(time.Duration(i) * time.Minute)
		t, err := r.Create(fmt.Sprintf("task %d", i), created)
		check(err)
		t.Completed = i%3 == 0
		t.AddTag("generated")
		if i%*fanout == 0 {
			parent = t.ID
			continue
		}
		check(r.Link(parent, t.ID))
	}

	writeTime := measureTime(func() {
		check(r.Save())
	})

	var loaded *repo.Repository
	readTime := measureTime(func() {
		loaded, err = repo.Open(dir)
		check(err)
	})

	ids := loaded.IDs()
	sample := ids[:min(len(ids), 100)]
	weighTime := measureTime(func() {
		for _, id := range sample {
			loaded.Progress(id)
		}
	})

	size, err := dirSize(dir.Path())
	check(err)
	fmt.Printf("Tasks: %d years, %d per day (%d total)\n", *years, *perDay, total)
	fmt.Printf("Store size: %dMB\n", size/1024/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
	fmt.Printf("Progress of %d tasks: %dms\n", len(sample), weighTime.Milliseconds())
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		return nil
	})
	return size, err
}
