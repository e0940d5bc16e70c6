package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/td0m/tuffous/pkg/task"
	"github.com/td0m/tuffous/pkg/task/date"
)

type editFlags struct {
	name     string
	details  string
	date     string
	ddl      string
	weight   uint
	tags     []string
	complete bool
}

func (f *editFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.name, "name", "n", "", "Change the name")
	fs.StringVarP(&f.details, "details", "d", "", "Change the details")
	fs.StringVarP(&f.date, "date", "w", "", "Change the scheduled date, none clears it")
	fs.StringVar(&f.ddl, "ddl", "", "Change the deadline, none clears it")
	fs.UintVar(&f.weight, "weight", 1, "Change the weight")
	fs.StringSliceVarP(&f.tags, "tag", "t", nil, "Bind tags; a tag ending in ! is unbound")
	fs.BoolVarP(&f.complete, "complete", "c", false, "Complete or, with =false, reopen")
}

// edit is a parsed set of changes. Nil fields are left alone.
type edit struct {
	name      *string
	details   *string
	scheduled **date.Date
	deadline  **time.Time
	weight    *uint
	tags      []string
	completed *bool
}

func isClear(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "" || s == "none"
}

func (f *editFlags) parse(cmd *cobra.Command, now time.Time) (edit, error) {
	var e edit
	fs := cmd.Flags()
	if fs.Changed("name") {
		if strings.TrimSpace(f.name) == "" {
			return e, fmt.Errorf("--name must not be empty")
		}
		e.name = &f.name
	}
	if fs.Changed("details") {
		e.details = &f.details
	}
	if fs.Changed("date") {
		var d *date.Date
		if !isClear(f.date) {
			v, err := date.ParseDate(f.date, now)
			if err != nil {
				return e, fmt.Errorf("--date %q: %w", f.date, err)
			}
			d = &v
		}
		e.scheduled = &d
	}
	if fs.Changed("ddl") {
		var t *time.Time
		if !isClear(f.ddl) {
			v, err := date.ParseDateTime(f.ddl, now)
			if err != nil {
				return e, fmt.Errorf("--ddl %q: %w", f.ddl, err)
			}
			t = &v
		}
		e.deadline = &t
	}
	if fs.Changed("weight") {
		if f.weight < 1 {
			return e, fmt.Errorf("--weight must be at least 1")
		}
		e.weight = &f.weight
	}
	if fs.Changed("complete") {
		e.completed = &f.complete
	}
	e.tags = f.tags
	return e, nil
}

func (e edit) apply(t *task.Task) {
	if e.name != nil {
		t.Metadata.Name = *e.name
	}
	if e.details != nil {
		t.Metadata.Details = *e.details
	}
	if e.scheduled != nil {
		t.Scheduled = copyDate(*e.scheduled)
	}
	if e.deadline != nil {
		t.Deadline = copyTime(*e.deadline)
	}
	if e.weight != nil {
		t.Weight = *e.weight
	}
	if e.completed != nil {
		t.Completed = *e.completed
	}
	for _, tag := range e.tags {
		t.ApplyTagOp(tag)
	}
}

func copyDate(d *date.Date) *date.Date {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func newEditCmd(a *app) *cobra.Command {
	var (
		filter filterFlags
		edits  editFlags
		pick   string
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit tasks chosen from a filtered list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			defer e.close()

			changes, err := edits.parse(cmd, a.now())
			if err != nil {
				return err
			}
			ids, err := choose(cmd, a, e, &filter, pick)
			if err != nil {
				return err
			}
			for _, id := range ids {
				t, err := e.repo.Get(id)
				if err != nil {
					return err
				}
				changes.apply(t)
			}
			if err := e.repo.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Edited %d task(s)\n", len(ids))
			return nil
		},
	}
	filter.register(cmd)
	edits.register(cmd)
	registerSelect(cmd, &pick)
	return cmd
}
