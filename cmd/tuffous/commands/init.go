package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/td0m/tuffous/internal/config"
	"github.com/td0m/tuffous/pkg/persist"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a task store in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := persist.InDir(a.root, nil)
			if err := dir.Init(); err != nil {
				return err
			}
			if _, err := os.Stat(config.Path(a.root)); errors.Is(err, fs.ErrNotExist) {
				if err := config.Write(a.root, config.Default()); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized task store in %s\n", persist.StorePath(a.root))
			return nil
		},
	}
}
