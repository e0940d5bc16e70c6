package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompleteCmd(a *app) *cobra.Command {
	var (
		filter filterFlags
		pick   string
	)
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Complete tasks chosen from a filtered list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open()
			if err != nil {
				return err
			}
			defer e.close()

			ids, err := choose(cmd, a, e, &filter, pick)
			if err != nil {
				return err
			}
			for _, id := range ids {
				t, err := e.repo.Get(id)
				if err != nil {
					return err
				}
				t.Completed = true
			}
			if err := e.repo.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %d task(s)\n", len(ids))
			return nil
		},
	}
	filter.register(cmd)
	registerSelect(cmd, &pick)
	return cmd
}
