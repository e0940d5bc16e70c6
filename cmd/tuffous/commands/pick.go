package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/td0m/tuffous/pkg/query"
	"github.com/td0m/tuffous/pkg/task"
	"go.uber.org/zap"
)

// listing is a filtered result laid out as a forest
type listing struct {
	lines    []query.Line
	rendered []string
}

func runQuery(a *app, e *env, f *filterFlags) (listing, error) {
	filter, err := f.build(a.now())
	if err != nil {
		return listing{}, err
	}
	r := query.Run(e.repo.Store, filter, e.cfg.Query.MaxResults)
	if r.Truncated {
		e.log.Warn("result truncated", zap.Int("limit", e.cfg.Query.MaxResults))
	}
	lines := query.Tree(e.repo.Store, r)
	return listing{
		lines:    lines,
		rendered: a.renderer(e).Tree(e.repo.Store, lines),
	}, nil
}

func registerSelect(cmd *cobra.Command, pick *string) {
	cmd.Flags().StringVar(pick, "select", "", `Positions to pick, such as "1,3 5-7"; asked for when empty`)
}

// choose lists the filtered tasks with their positions and returns the ones
// picked, either from --select or from a line read on stdin
func choose(cmd *cobra.Command, a *app, e *env, f *filterFlags, pick string) ([]task.ID, error) {
	l, err := runQuery(a, e, f)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	if len(l.lines) == 0 {
		fmt.Fprintln(out, "No tasks matched")
		return []task.ID{}, nil
	}
	fmt.Fprintf(out, "%d todos:\n", len(l.lines))
	for i, s := range l.rendered {
		fmt.Fprintf(out, "[%d] %s\n", i+1, s)
	}
	if pick == "" {
		fmt.Fprintln(out, "\nPlease enter your selection:")
		pick, err = readLine(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
	}
	return query.Pick(l.lines, query.ParseSelection(pick, len(l.lines))), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read selection: %w", err)
	}
	return strings.TrimSpace(line), nil
}
