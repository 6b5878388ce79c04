package router

import (
	"context"

	"github.com/dmitrijs2005/realtydesk/internal/models"
)

// SessionSource answers the authentication questions guards ask.
// *services.AuthService satisfies it.
type SessionSource interface {
	CurrentUser(ctx context.Context) (*models.Session, error)
}

// RequireAuth wraps next so it only renders for an authenticated session.
// Unauthenticated navigation is redirected to the login route and next never
// runs; when authenticated there is no side effect at all.
func RequireAuth(src SessionSource, next Handler) Handler {
	return func(c *Ctx) (string, error) {
		sess, err := src.CurrentUser(c.Context())
		if err != nil {
			return "", err
		}
		if sess == nil {
			c.Redirect(PathLogin)
			return "", nil
		}
		return next(c)
	}
}

// RequireAdmin is RequireAuth plus the admin variant check: an authenticated
// regular user hitting an admin route is sent to login, not granted access.
func RequireAdmin(src SessionSource, next Handler) Handler {
	return func(c *Ctx) (string, error) {
		sess, err := src.CurrentUser(c.Context())
		if err != nil {
			return "", err
		}
		if sess == nil || !sess.IsAdmin() {
			c.Redirect(PathLogin)
			return "", nil
		}
		return next(c)
	}
}
