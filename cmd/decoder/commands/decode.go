package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"decoder/internal/substitute"
)

// decode <path-or-URL>: print the page with the dictionary substituted,
// leaving the source untouched.
func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <path-or-URL>",
		Short: "Print an HTML page with the dictionary substituted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := wire.Source.Read(ctx(cmd), args[0])
			if err != nil {
				return err
			}
			doc, err := html.Parse(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			n := substitute.Document(doc, wire.Dict.Merged())
			wire.Log.Debug("decoded", zap.String("source", args[0]), zap.Int("changed", n))
			return html.Render(cmd.OutOrStdout(), doc)
		},
	}
}
