package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// edit <cipher> <decoded>: change the decoded text of an existing entry.
func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <cipher> <decoded>",
		Short: "Change the decoded text of an existing entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cipher := strings.TrimSpace(args[0])
			if _, ok := wire.Dict.Merged()[cipher]; !ok {
				return fmt.Errorf("no entry for %q", cipher)
			}
			if err := wire.Dict.SetEntry(ctx(cmd), cipher, args[1]); err != nil {
				return err
			}
			status(cmd, "updated")
			return nil
		},
	}
}
