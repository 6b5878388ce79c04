package cmd

import "github.com/spf13/cobra"

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Start the interactive shell",
	Long:  `Start the interactive shell on the home page. Same as running realtydesk with no subcommand.`,
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(openCmd)
}
