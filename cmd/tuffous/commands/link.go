package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/td0m/tuffous/internal/selection"
	"github.com/td0m/tuffous/pkg/task"
)

func newFatherCmd(a *app) *cobra.Command {
	return newLinkCmd(a, "father", "Pick the parent for the next child command", func(c *selection.Cache, ids []task.ID) {
		if len(ids) > 0 {
			c.SetFather(ids[0])
		}
	})
}

func newChildCmd(a *app) *cobra.Command {
	return newLinkCmd(a, "child", "Pick children of the parent chosen with father; linked ones are unlinked", func(c *selection.Cache, ids []task.ID) {
		c.AddChildren(ids...)
	})
}

// newLinkCmd records a pick in the selection cache and, once both father
// and children are known, toggles their links
func newLinkCmd(a *app, use, short string, record func(*selection.Cache, []task.ID)) *cobra.Command {
	var (
		filter filterFlags
		pick   string
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			defer e.close()
			cache, err := a.cache()
			if err != nil {
				return err
			}

			ids, err := choose(cmd, a, e, &filter, pick)
			if err != nil {
				return err
			}
			record(cache, ids)

			out := cmd.OutOrStdout()
			results, linkErr := cache.Process(e.repo.Store)
			for _, r := range results {
				verb := "Unlinked"
				if r.Linked {
					verb = "Linked"
				}
				fmt.Fprintf(out, "%s %s\n", verb, r.Child)
			}
			if err := cache.Save(); err != nil {
				return err
			}
			if err := e.repo.Save(); err != nil {
				return err
			}
			return linkErr
		},
	}
	filter.register(cmd)
	registerSelect(cmd, &pick)
	return cmd
}
