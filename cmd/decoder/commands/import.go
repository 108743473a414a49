package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"decoder/internal/domain"
	"decoder/internal/services/dictionary"
)

// import <path-or-URL>: merge a JSON object of entries into the user layer.
// A malformed payload is reported as a status line and applies nothing.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path-or-URL>",
		Short: "Import entries from a JSON file or URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := wire.Source.Read(ctx(cmd), args[0])
			if err != nil {
				return err
			}
			raw, err := dictionary.DecodeImport(data)
			var ie *domain.ImportError
			if errors.As(err, &ie) {
				wire.Log.Warn("import rejected", zap.String("source", args[0]), zap.Error(err))
				status(cmd, dictionary.StatusImportFailed)
				return nil
			}
			if err != nil {
				return err
			}
			n, err := wire.Dict.ImportEntries(ctx(cmd), raw)
			if err != nil {
				return err
			}
			status(cmd, dictionary.StatusImported(n))
			return nil
		},
	}
}
