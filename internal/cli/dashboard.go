package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/realtydesk/internal/router"
	"github.com/dmitrijs2005/realtydesk/internal/services"
	"github.com/dmitrijs2005/realtydesk/internal/ui"
)

// Users handles the admin dashboard command:
//
//	users                      — list all registered users
//	users <query>              — filter by name or email substring
//	users --status=active      — only users who have logged in
//	users --status=never       — only users who never logged in
//	users delete <id>          — delete a user after confirmation
//
// Navigation to the admin route happens first, so the route guard is the
// single access check: anyone not signed in as admin is bounced to the
// login page before the command does anything.
func (a *App) Users(ctx context.Context, args []string) error {
	rendered, ok, err := a.openAdmin(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if len(args) > 0 && args[0] == "delete" {
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: users delete <id>")
			return nil
		}
		return a.deleteUser(ctx, args[1], false)
	}

	filter, err := parseUsersArgs(args)
	if err != nil {
		fmt.Fprintln(a.out, ui.ErrorLine(err))
		return nil
	}
	if filter == (services.AccountFilter{}) {
		// The plain dashboard was already rendered by the navigation.
		fmt.Fprint(a.out, rendered)
		return nil
	}

	users, err := a.accounts.List(ctx, filter)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, ui.AdminDashboardPage(users))
	return nil
}

// DeleteAccount removes a user record by id. Unless confirmed is already
// true, the user is asked first. The admin route guard gates access, same
// as Users.
func (a *App) DeleteAccount(ctx context.Context, id string, confirmed bool) error {
	_, ok, err := a.openAdmin(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return a.deleteUser(ctx, id, confirmed)
}

// openAdmin navigates to the admin route. ok reports whether the guard let
// the navigation through; on redirect the landing page is printed.
func (a *App) openAdmin(ctx context.Context) (rendered string, ok bool, err error) {
	rendered, err = a.router.Navigate(ctx, router.PathAdmin)
	if err != nil {
		return "", false, err
	}
	if a.router.Current() != router.PathAdmin {
		fmt.Fprint(a.out, rendered)
		return "", false, nil
	}
	return rendered, true, nil
}

func (a *App) deleteUser(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete user %s?", id), a.out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
	}

	if err := a.accounts.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, ui.ErrorLine(err))
		return nil
	}
	fmt.Fprintln(a.out, ui.SuccessLine("User deleted."))
	return nil
}

// parseUsersArgs splits the users command tail into a filter: tokens of the
// form --status=X select a login status, everything else joins the search
// query.
func parseUsersArgs(args []string) (services.AccountFilter, error) {
	var f services.AccountFilter
	var queryParts []string
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--status="); ok {
			status, err := services.ParseStatusFilter(v)
			if err != nil {
				return services.AccountFilter{}, err
			}
			f.Status = status
			continue
		}
		queryParts = append(queryParts, arg)
	}
	f.Query = strings.Join(queryParts, " ")
	return f, nil
}
