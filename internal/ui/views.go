package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/realtydesk/internal/models"
)

// HomePage renders the landing page. Content varies with the session:
// anonymous visitors get a prompt to log in, signed-in users a greeting.
func HomePage(sess *models.Session) string {
	var b strings.Builder
	b.WriteString(Title.Render("RealtyDesk") + "\n")
	b.WriteString(Subtitle.Render("Find your next home.") + "\n\n")
	if sess == nil {
		b.WriteString("Browse listings as a guest, or type " + Dim.Render("login") + " to sign in.\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Welcome back, %s.\n", sess.User.FullName()))
	if sess.IsAdmin() {
		b.WriteString(Dim.Render("Admin tools available: type users") + "\n")
	}
	return b.String()
}

// LoginPage renders the sign-in prompt.
func LoginPage() string {
	return Title.Render("Sign in") + "\n" +
		Dim.Render("Enter your email and password. Type register to create an account.") + "\n"
}

// RegisterPage renders the account creation prompt.
func RegisterPage() string {
	return Title.Render("Create account") + "\n" +
		Dim.Render("Passwords must be at least 6 characters.") + "\n"
}

// ResetPasswordPage renders the password reset prompt.
func ResetPasswordPage() string {
	return Title.Render("Reset password") + "\n" +
		Dim.Render("Enter the email you registered with and a new password.") + "\n"
}

// AccountPage renders the signed-in user's profile.
func AccountPage(sess *models.Session) string {
	var b strings.Builder
	b.WriteString(Title.Render("My account") + "\n\n")
	b.WriteString(Label.Render("Name") + sess.User.FullName() + "\n")
	b.WriteString(Label.Render("Email") + sess.User.Email + "\n")
	b.WriteString(Label.Render("Signed in") + sess.LoginTime.Format(time.RFC1123) + "\n")
	if sess.IsAdmin() {
		b.WriteString(Label.Render("Role") + "administrator\n")
	}
	return b.String()
}

// AdminDashboardPage renders the user management table.
func AdminDashboardPage(users []models.UserRecord) string {
	var b strings.Builder
	b.WriteString(Title.Render("User management") + "\n\n")
	if len(users) == 0 {
		b.WriteString(Dim.Render("No users match.") + "\n")
		return b.String()
	}
	for _, u := range users {
		status := Dim.Render("never logged in")
		if u.HasLoggedIn() {
			status = Success.Render("active") + Dim.Render(" (last login "+u.LastLoginAt.Format("2006-01-02 15:04")+")")
		}
		b.WriteString(fmt.Sprintf("%s  %s <%s>\n", Dim.Render(u.ID), u.FullName(), u.Email))
		b.WriteString("  " + status + "\n")
	}
	b.WriteString("\n" + Dim.Render(fmt.Sprintf("%d user(s)", len(users))) + "\n")
	return b.String()
}
