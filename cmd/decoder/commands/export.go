package commands

import (
	"bytes"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"decoder/internal/services/dictionary"
	"decoder/internal/store"
)

// export [path]: write the merged dictionary as JSON. "-" writes to stdout;
// no path writes decoder_dict_<timestamp>.json into the export directory.
func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path|-]",
		Short: "Export the merged dictionary as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] == "-" {
				return wire.Dict.Export(cmd.OutOrStdout())
			}

			path := filepath.Join(wire.Config.ExportDir, dictionary.ExportFilename(time.Now()))
			if len(args) == 1 {
				path = args[0]
			}
			var buf bytes.Buffer
			if err := wire.Dict.Export(&buf); err != nil {
				return err
			}
			if err := store.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
				return err
			}
			status(cmd, dictionary.StatusExported+" "+path)
			return nil
		},
	}
}
