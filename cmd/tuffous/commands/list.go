package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/td0m/tuffous/pkg/task"
	"gopkg.in/yaml.v3"
)

func newListCmd(a *app) *cobra.Command {
	var (
		filter filterFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks matching the filters, with their parents and children",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			defer e.close()

			l, err := runQuery(a, e, &filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch output {
			case "text":
				return writeText(out, l)
			case "json", "yaml":
				return writeRecords(out, output, records(e, l))
			default:
				return fmt.Errorf("unknown output format %q, expected text, json or yaml", output)
			}
		},
	}
	filter.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func writeText(w io.Writer, l listing) error {
	if len(l.lines) == 0 {
		_, err := fmt.Fprintln(w, "No tasks matched")
		return err
	}
	if _, err := fmt.Fprintf(w, "%d todos:\n", len(l.lines)); err != nil {
		return err
	}
	for _, s := range l.rendered {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// records returns each listed task once, in listing order
func records(e *env, l listing) []task.Task {
	seen := task.Set{}
	out := []task.Task{}
	for _, line := range l.lines {
		if seen.Has(line.ID) {
			continue
		}
		seen.Add(line.ID)
		if t, err := e.repo.Get(line.ID); err == nil {
			out = append(out, t.Clone())
		}
	}
	return out
}

func writeRecords(w io.Writer, format string, ts []task.Task) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ts); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ts)
}
