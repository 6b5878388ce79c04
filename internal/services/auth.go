// Package services contains the application services: authentication and
// session handling, and admin account management.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/realtydesk/internal/common"
	"github.com/dmitrijs2005/realtydesk/internal/logging"
	"github.com/dmitrijs2005/realtydesk/internal/models"
	"github.com/dmitrijs2005/realtydesk/internal/repositories/credentials"
	"github.com/dmitrijs2005/realtydesk/internal/repositories/sessions"
)

// Admin bypass credentials, checked before any credential-store lookup.
// They are compiled into the binary on purpose: the modeled site ships them
// to every client, and the admin identity exists only as a session artifact.
const (
	adminEmailPrimary   = "admin@enkonix.in"
	adminEmailSecondary = "admin@enkonix.com"
	adminPassword       = "admin123"
)

const minPasswordLen = 6

// AuthService implements the register / login / logout / reset operations
// against the credential and session repositories. Every operation is a
// single synchronous attempt; failures come back as sentinel errors from the
// common package, never as panics.
type AuthService struct {
	users    credentials.Repository
	sessions sessions.Repository
	logger   logging.Logger

	// Injection points for tests.
	now   func() time.Time
	newID func() string
}

func NewAuthService(users credentials.Repository, sess sessions.Repository, logger logging.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sess,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register validates the input, rejects duplicate emails, and appends a new
// record to the credential store. It does not log the new user in; the
// caller sends them to the login flow.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.UserRecord, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	if in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", common.ErrValidation)
	}
	if !looksLikeEmail(in.Email) {
		return nil, fmt.Errorf("%w: enter a valid email address", common.ErrValidation)
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}

	list, err := s.users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].EmailMatches(in.Email) {
			s.logger.Warn(ctx, "registration rejected, email already registered", "email", in.Email)
			return nil, common.ErrDuplicateEmail
		}
	}

	rec := models.UserRecord{
		ID:        s.newID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: s.now(),
	}
	if err := s.users.SaveUsers(ctx, append(list, rec)); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", rec.ID, "email", rec.Email)
	return &rec, nil
}

// Login authenticates email/password and persists the resulting session.
//
// The hardcoded admin pair is checked first and never consults the
// credential store. For regular users the email match is case-insensitive
// and the password match is an exact string comparison; a successful login
// stamps LastLoginAt on the stored record.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = strings.TrimSpace(email)

	if isAdminBypass(email, password) {
		sess := models.NewAdminSession(email, s.now())
		if err := s.sessions.Set(ctx, sess); err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "admin logged in", "email", email)
		return sess, nil
	}

	list, err := s.users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range list {
		if list[i].EmailMatches(email) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn(ctx, "login failed, unknown email", "email", email)
		return nil, common.ErrNotFound
	}
	if list[idx].Password != password {
		s.logger.Warn(ctx, "login failed, wrong password", "email", email)
		return nil, common.ErrInvalidCredentials
	}

	now := s.now()
	list[idx].LastLoginAt = now
	if err := s.users.SaveUsers(ctx, list); err != nil {
		return nil, err
	}

	sess := models.NewUserSession(list[idx], now)
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "user_id", list[idx].ID, "email", list[idx].Email)
	return sess, nil
}

// Logout removes the session. Calling it without a session is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.logger.Debug(ctx, "session cleared")
	return nil
}

// ResetPassword overwrites the matched record's password in place. There is
// no token or out-of-band verification: possession of the email address is
// the whole check, matching the modeled site's behavior.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = strings.TrimSpace(email)

	if utf8.RuneCountInString(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}

	list, err := s.users.GetUsers(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if !list[i].EmailMatches(email) {
			continue
		}
		list[i].Password = newPassword
		if err := s.users.SaveUsers(ctx, list); err != nil {
			return err
		}
		s.logger.Info(ctx, "password reset", "user_id", list[i].ID, "email", list[i].Email)
		return nil
	}

	s.logger.Warn(ctx, "password reset failed, unknown email", "email", email)
	return common.ErrNotFound
}

// IsAuthenticated reports whether a well-formed session exists right now.
// The slot is read fresh on every call.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	sess, err := s.sessions.Get(ctx)
	return err == nil && sess != nil
}

// CurrentUser returns the current session, or (nil, nil) when logged out.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.Session, error) {
	return s.sessions.Get(ctx)
}

// looksLikeEmail applies the loose pattern the site uses: non-empty and
// containing both "@" and ".".
func looksLikeEmail(addr string) bool {
	return addr != "" && strings.Contains(addr, "@") && strings.Contains(addr, ".")
}

func isAdminBypassEmail(email string) bool {
	return strings.EqualFold(email, adminEmailPrimary) || strings.EqualFold(email, adminEmailSecondary)
}

func isAdminBypass(email, password string) bool {
	return isAdminBypassEmail(email) && password == adminPassword
}
