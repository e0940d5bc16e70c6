package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	var (
		filter filterFlags
		pick   string
	)
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove tasks chosen from a filtered list",
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
			removed := 0
			for _, id := range ids {
				if e.repo.Remove(id) {
					removed++
				}
			}
			cache.Clean()
			if err := cache.Save(); err != nil {
				return err
			}
			if err := e.repo.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d task(s)\n", removed)
			return nil
		},
	}
	filter.register(cmd)
	registerSelect(cmd, &pick)
	return cmd
}

func newCleanCacheCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cleancache",
		Short: "Forget a pending father/child pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := a.cache()
			if err != nil {
				return err
			}
			cache.Clean()
			return cache.Save()
		},
	}
}
