package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"decoder/internal/services/dictionary"
)

// list [--query q]: print merged entries, optionally filtered.
func listCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dictionary entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := wire.Dict.Search(query)
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Cipher, e.Decoded)
			}
			status(cmd, dictionary.StatusListed(len(entries), wire.Dict.Count(), query != ""))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "substring to match against cipher or decoded text")
	return cmd
}

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of dictionary entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status(cmd, dictionary.StatusListed(0, wire.Dict.Count(), false))
			return nil
		},
	}
}
