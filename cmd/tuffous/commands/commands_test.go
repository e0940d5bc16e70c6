package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/tuffous/pkg/task"
	"github.com/td0m/tuffous/pkg/task/date"
)

type harness struct {
	t    *testing.T
	root string
	now  time.Time
}

func newHarness(t *testing.T) *harness {
	return &harness{
		t:    t,
		root: t.TempDir(),
		now:  time.Date(2021, 4, 21, 12, 0, 0, 0, time.UTC),
	}
}

// clock advances a second per reading so tasks created in a row get distinct ids
func (h *harness) clock() time.Time {
	h.now = h.now.Add(time.Second)
	return h.now
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	cmd := newRootCmd(h.clock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--dir", h.root, "--plain"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run("", args...)
	if err != nil {
		h.t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func (h *harness) records(args ...string) map[string]task.Task {
	h.t.Helper()
	out := h.mustRun(append([]string{"list", "-o", "json"}, args...)...)
	var ts []task.Task
	if err := json.Unmarshal([]byte(out), &ts); err != nil {
		h.t.Fatalf("decode %q: %v", out, err)
	}
	byName := map[string]task.Task{}
	for _, t := range ts {
		byName[t.Name()] = t
	}
	return byName
}

func TestRequiresInit(t *testing.T) {
	is := is.New(t)
	h := newHarness(t)

	_, err := h.run("", "list")
	is.True(errors.Is(err, ErrNoStore))

	out := h.mustRun("init")
	is.True(strings.Contains(out, "Initialized"))
	h.mustRun("init")

	out = h.mustRun("list")
	is.Equal(out, "No tasks matched\n")
}

func TestWorkflow(t *testing.T) {
	is := is.New(t)
	h := newHarness(t)
	h.mustRun("init")

	h.mustRun("new", "Groceries")
	h.mustRun("new", "Milk", "-t", "shop", "--weight", "2")
	h.mustRun("new", "Eggs")

	out := h.mustRun("list")
	is.True(strings.HasPrefix(out, "3 todos:\n"))
	is.True(strings.Contains(out, "└─ Milk [shop] !\n"))

	out = h.mustRun("father", "--fname", "groceries", "--select", "1")
	is.True(strings.Contains(out, "[1] └─ Groceries"))
	out = h.mustRun("child", "--fname", "milk", "--select", "1")
	is.True(strings.Contains(out, "Linked "))

	out = h.mustRun("list", "--fname", "milk")
	is.Equal(out, "2 todos:\n└─ Groceries (0/2)\n   └─ Milk [shop] !\n")

	out = h.mustRun("complete", "--fname", "milk", "--select", "2")
	is.True(strings.Contains(out, "Completed 1 task(s)"))

	out = h.mustRun("list", "--fname", "groceries")
	is.Equal(out, "1 todos:\n└─ Groceries (2/2)\n")

	out = h.mustRun("list", "--fname", "groceries", "--flogged", "all")
	is.Equal(out, "2 todos:\n└─ Groceries (2/2)\n   └─ x Milk [shop] !\n")

	out = h.mustRun("remove", "--fname", "groceries", "--select", "1")
	is.True(strings.Contains(out, "Removed 1 task(s)"))

	records := h.records("--flogged", "all")
	is.Equal(len(records), 2)
	milk := records["Milk"]
	is.Equal(len(milk.Parents), 0)
	is.True(milk.Completed)
}

func TestEdit(t *testing.T) {
	is := is.New(t)
	h := newHarness(t)
	h.mustRun("init")
	h.mustRun("new", "Eggs", "-t", "food")

	h.mustRun("edit", "--fname", "eggs", "--select", "1",
		"-w", "2021-05-01",
		"--ddl", "2021-05-02 10:00",
		"-d", "a dozen",
		"-t", "shop,food!",
		"--weight", "3",
	)
	eggs := h.records()["Eggs"]
	is.Equal(*eggs.Scheduled, date.New(2021, 5, 1))
	is.True(eggs.Deadline.Equal(time.Date(2021, 5, 2, 10, 0, 0, 0, time.UTC)))
	is.Equal(eggs.Metadata.Details, "a dozen")
	is.Equal(eggs.Tags, []string{"shop"})
	is.Equal(eggs.Weight, uint(3))

	h.mustRun("edit", "--fname", "eggs", "--select", "1", "-w", "none", "--ddl", "none", "-n", "Free range eggs")
	eggs = h.records()["Free range eggs"]
	is.True(eggs.Scheduled == nil)
	is.True(eggs.Deadline == nil)
}

func TestSelectionFromStdin(t *testing.T) {
	is := is.New(t)
	h := newHarness(t)
	h.mustRun("init")
	h.mustRun("new", "Eggs")

	out, err := h.run("1\n", "complete", "--fname", "eggs")
	is.NoErr(err)
	is.True(strings.Contains(out, "Please enter your selection:"))
	is.True(h.records("--flogged", "true")["Eggs"].Completed)

	out, err = h.run("", "complete", "--fname", "eggs")
	is.NoErr(err)
	is.True(strings.Contains(out, "No tasks matched"))
}

func TestFilterFlags(t *testing.T) {
	is := is.New(t)
	h := newHarness(t)
	h.mustRun("init")
	h.mustRun("new", "Today", "-w", "today")
	h.mustRun("new", "Later", "-w", "2021-05-10", "--ddl", "2021-05-11 09:00")
	h.mustRun("new", "Tagged", "-t", "work")

	names := func(args ...string) []string {
		var out []string
		for name := range h.records(args...) {
			out = append(out, name)
		}
		return out
	}
	is.Equal(names("--ftoday"), []string{"Today"})
	is.Equal(names("--fdate", "2021-05-10"), []string{"Later"})
	is.Equal(names("--fdater", "2021-05-01,"), []string{"Later"})
	is.Equal(names("--fddlr", ",2021-05-11"), []string{"Later"})
	is.Equal(names("--fddl", "2021-05-11"), []string{"Later"})
	is.Equal(names("--ftag", "work"), []string{"Tagged"})
	is.Equal(len(names("--ftag", "work!")), 2)
}

func TestInvalidInput(t *testing.T) {
	h := newHarness(t)
	h.mustRun("init")
	h.mustRun("new", "Eggs")

	tests := []struct {
		name string
		args []string
	}{
		{"bad date", []string{"new", "x", "-w", "someday"}},
		{"zero weight", []string{"new", "x", "--weight", "0"}},
		{"empty name", []string{"edit", "--select", "1", "-n", " "}},
		{"half range", []string{"list", "--fdater", "today"}},
		{"bad logged", []string{"list", "--flogged", "maybe"}},
		{"bad output", []string{"list", "-o", "xml"}},
		{"missing title", []string{"new"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			_, err := h.run("", tt.args...)
			is.True(err != nil)
		})
	}
}

func TestChildCycleIsReported(t *testing.T) {
	is := is.New(t)
	h := newHarness(t)
	h.mustRun("init")
	h.mustRun("new", "Top")
	h.mustRun("new", "Bottom")
	h.mustRun("father", "--fname", "top", "--select", "1")
	h.mustRun("child", "--fname", "bottom", "--select", "1")

	h.mustRun("father", "--fname", "bottom", "--select", "2")
	_, err := h.run("", "child", "--fname", "top", "--select", "1")
	is.True(errors.Is(err, task.ErrCycle))

	records := h.records()
	is.Equal(len(records["Top"].Parents), 0)
	is.Equal(len(records["Bottom"].Parents), 1)

	h.mustRun("cleancache")
}

func TestNewWithParent(t *testing.T) {
	is := is.New(t)
	h := newHarness(t)
	h.mustRun("init")
	h.mustRun("new", "Groceries")
	parent := h.records()["Groceries"]

	h.mustRun("new", "Milk", "--parent", parent.ID.String())
	is.Equal(h.records()["Milk"].Parents, []task.ID{parent.ID})

	_, err := h.run("", "new", "Eggs", "--parent", "nope")
	is.True(err != nil)
	_, err = h.run("", "new", "Eggs", "--parent", "42")
	is.True(errors.Is(err, task.ErrNotFound))
	is.Equal(len(h.records()), 2)
}
