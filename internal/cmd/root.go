// Package cmd defines the realtydesk command tree.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/realtydesk/internal/cli"
	"github.com/dmitrijs2005/realtydesk/internal/config"
	"github.com/dmitrijs2005/realtydesk/internal/logging"
)

var flags = config.Overrides{}

var rootCmd = &cobra.Command{
	Use:   "realtydesk",
	Short: "Local-first real estate account manager",
	Long: `RealtyDesk keeps its accounts and session in a local slot store and
drives everything through an interactive shell.

Running without a subcommand opens the shell on the home page. Type 'help'
there for the available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "path to a JSON config file")
	pf.StringVarP(&flags.StorageDriver, "driver", "d", "", "storage driver: sqlite, file or memory")
	pf.StringVarP(&flags.StateDir, "state-dir", "s", "", "directory for local state")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging")
}

// newApp resolves configuration and assembles the application for a command
// invocation.
func newApp(ctx context.Context) (*cli.App, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	logger := logging.NewTextLogger(os.Stderr, cfg.Verbose)
	return cli.NewApp(ctx, cfg, logger)
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run(ctx)
	return nil
}

// Execute runs the command tree and reports any error to stderr.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
