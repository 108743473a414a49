package commands

import (
	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <cipher>",
		Aliases: []string{"rm"},
		Short:   "Remove an entry, hiding the bundled value if there is one",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Dict.RemoveEntry(ctx(cmd), args[0]); err != nil {
				return err
			}
			status(cmd, "removed")
			return nil
		},
	}
}
