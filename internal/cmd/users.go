package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	usersQuery  string
	usersStatus string
	deleteYes   bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Admin user management",
	Long: `Inspect and manage registered accounts.

These commands require an admin session in the local store; sign in with
the admin account through the interactive shell first.`,
	RunE: runUsersList,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered accounts",
	Long: `List registered accounts, optionally narrowed by a search query
and a login-status filter.

Examples:
  realtydesk users list
  realtydesk users list --query jane
  realtydesk users list --status never`,
	RunE: runUsersList,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersDelete,
}

func init() {
	for _, c := range []*cobra.Command{usersCmd, usersListCmd} {
		c.Flags().StringVarP(&usersQuery, "query", "q", "", "match name or email substring")
		c.Flags().StringVar(&usersStatus, "status", "", "filter by login status: active, never or any")
	}
	usersDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	usersCmd.AddCommand(usersListCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	var cliArgs []string
	if usersStatus != "" {
		cliArgs = append(cliArgs, fmt.Sprintf("--status=%s", usersStatus))
	}
	if usersQuery != "" {
		cliArgs = append(cliArgs, usersQuery)
	}
	return app.Users(ctx, cliArgs)
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.DeleteAccount(ctx, args[0], deleteYes)
}
