package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/td0m/tuffous/pkg/task"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		edits   editFlags
		parents []string
	)
	cmd := &cobra.Command{
		Use:   "new TITLE",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			defer e.close()

			now := a.now()
			changes, err := edits.parse(cmd, now)
			if err != nil {
				return err
			}
			parentIDs := make([]task.ID, 0, len(parents))
			for _, p := range parents {
				id, err := task.ParseID(p)
				if err != nil {
					return fmt.Errorf("--parent %q: %w", p, err)
				}
				if !e.repo.Has(id) {
					return fmt.Errorf("--parent %s: %w", id, task.ErrNotFound)
				}
				parentIDs = append(parentIDs, id)
			}
			t, err := e.repo.Create(args[0], now)
			if err != nil {
				return err
			}
			changes.apply(t)
			for _, id := range parentIDs {
				if err := e.repo.Link(id, t.ID); err != nil {
					return err
				}
			}
			if err := e.repo.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s\n", t.ID, t.Name())
			return nil
		},
	}
	edits.register(cmd)
	cmd.Flags().StringSliceVarP(&parents, "parent", "p", nil, "IDs of the tasks to nest the new task under")
	return cmd
}
