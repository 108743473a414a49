package commands

import (
	"github.com/spf13/cobra"

	"decoder/internal/domain"
	"decoder/internal/services/page"
)

// apply [--target id]: substitute the merged dictionary into the page.
// Apply failures are reported as a status line, not an error.
func applyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Decode the active page (or --target) with the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := wire.Page.Apply(ctx(cmd), target)
			if err != nil && !domain.IsApplyError(err) {
				return err
			}
			status(cmd, page.StatusFor(false, err))
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "target id (DevTools target or HTML file path)")
	return cmd
}

func restoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Reload the page, discarding substitutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := wire.Page.Restore(ctx(cmd), target)
			if err != nil && !domain.IsApplyError(err) {
				return err
			}
			status(cmd, page.StatusFor(true, err))
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "target id (DevTools target or HTML file path)")
	return cmd
}
