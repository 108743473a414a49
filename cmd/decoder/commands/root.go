package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"decoder/internal/app"
)

var (
	home        string
	configPath  string
	passphrase  string
	verbose     bool
	debuggerURL string
	pageFile    string
	target      string

	wire *app.Wire
)

// Execute runs the decoder CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "decoder",
		Short:         "Glyph substitution dictionary and page decoder",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				h, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = h
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			cfg.Home = home
			if passphrase != "" {
				cfg.Storage.Passphrase = passphrase
			}
			if debuggerURL != "" {
				cfg.Browser.DebuggerURL = debuggerURL
			}
			if pageFile != "" {
				cfg.PageFile = pageFile
			}
			if verbose {
				cfg.LogLevel = "debug"
			}

			log, err := app.NewLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			w, err := app.NewWire(ctx(cmd), cfg, log)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			_ = wire.Log.Sync()
			err := wire.Close()
			wire = nil
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.decoder)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing the stored dictionary")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&debuggerURL, "debugger-url", "", "DevTools websocket URL of a running browser")
	root.PersistentFlags().StringVar(&pageFile, "file", "", "operate on a local HTML file instead of a browser")

	root.AddCommand(
		listCmd(), countCmd(), addCmd(), editCmd(), removeCmd(),
		importCmd(), exportCmd(), applyCmd(), restoreCmd(), decodeCmd(),
	)
	return root
}

func ctx(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}

func status(cmd *cobra.Command, line string) {
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
