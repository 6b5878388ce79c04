package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X .../internal/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the realtydesk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("realtydesk", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
