package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/realtydesk/internal/common"
	"github.com/dmitrijs2005/realtydesk/internal/router"
	"github.com/dmitrijs2005/realtydesk/internal/services"
	"github.com/dmitrijs2005/realtydesk/internal/ui"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks the account creation form. On success the user is taken to
// the login page; a new account is never signed in automatically.
func (a *App) Register(ctx context.Context) error {
	if err := a.Open(ctx, router.PathRegister); err != nil {
		return err
	}

	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		fmt.Fprintln(a.out, ui.ErrorLine(fmt.Errorf("%w: passwords do not match", common.ErrValidation)))
		return nil
	}

	_, err = a.auth.Register(ctx, services.RegisterInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		fmt.Fprintln(a.out, ui.ErrorLine(err))
		return nil
	}

	fmt.Fprintln(a.out, ui.SuccessLine("Account created. Please sign in."))
	return a.Open(ctx, router.PathLogin)
}

// Login prompts for credentials and authenticates. A successful sign-in
// lands on the home page; a failed one reports the error and stays put.
func (a *App) Login(ctx context.Context) error {
	if err := a.Open(ctx, router.PathLogin); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, ui.ErrorLine(err))
		return nil
	}

	fmt.Fprintln(a.out, ui.SuccessLine("Signed in as "+sess.User.FullName()))
	return a.Open(ctx, router.PathHome)
}

// ResetPassword overwrites the stored password for a registered email.
func (a *App) ResetPassword(ctx context.Context) error {
	if err := a.Open(ctx, router.PathResetPassword); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		fmt.Fprintln(a.out, ui.ErrorLine(fmt.Errorf("%w: passwords do not match", common.ErrValidation)))
		return nil
	}

	if err := a.auth.ResetPassword(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, ui.ErrorLine(err))
		return nil
	}

	fmt.Fprintln(a.out, ui.SuccessLine("Password updated. Please sign in."))
	return a.Open(ctx, router.PathLogin)
}

// Logout clears the session and returns to the home page. Logging out while
// signed out is not an error.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, ui.ErrorLine(err))
		return nil
	}
	fmt.Fprintln(a.out, ui.SuccessLine("Signed out."))
	return a.Open(ctx, router.PathHome)
}

// WhoAmI prints the identity of the current session, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	sess, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	role := "user"
	if sess.IsAdmin() {
		role = "administrator"
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", sess.User.FullName(), sess.User.Email, role)
	return nil
}
