package commands

import (
	"github.com/spf13/cobra"
)

// add <cipher> <decoded>: add or override an entry in the user layer.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <cipher> <decoded>",
		Short: "Add or override a dictionary entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Dict.SetEntry(ctx(cmd), args[0], args[1]); err != nil {
				return err
			}
			status(cmd, "added")
			return nil
		},
	}
}
