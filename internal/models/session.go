package models

import "time"

// SessionKind tags the two session variants. Keeping the admin identity as a
// distinct variant (instead of a specially shaped user record) is what makes
// "admin is never written to the credential store" hold structurally: only
// the login bypass constructs the admin variant, and nothing that persists
// user lists accepts a Session.
type SessionKind string

const (
	SessionUser  SessionKind = "user"
	SessionAdmin SessionKind = "admin"
)

// Session is the single "who is logged in" record. Its presence in the
// session slot is the sole authentication signal. For the user variant, User
// is a by-value snapshot of the matched record at login time; no referential
// integrity is maintained if the stored record later changes.
type Session struct {
	Kind      SessionKind `json:"kind"`
	User      UserRecord  `json:"user"`
	LoginTime time.Time   `json:"loginTime"`
}

// IsAdmin reports whether this is the synthetic admin session.
func (s *Session) IsAdmin() bool {
	return s.Kind == SessionAdmin
}

// Valid reports whether the session carries a known variant tag. Unreadable
// or foreign payloads are treated as "no session" rather than errors.
func (s *Session) Valid() bool {
	return s.Kind == SessionUser || s.Kind == SessionAdmin
}

// NewUserSession snapshots a matched user record into a session.
func NewUserSession(u UserRecord, at time.Time) *Session {
	return &Session{Kind: SessionUser, User: u, LoginTime: at}
}

// NewAdminSession builds the synthetic admin session. The identity exists
// only as a session artifact.
func NewAdminSession(email string, at time.Time) *Session {
	return &Session{
		Kind: SessionAdmin,
		User: UserRecord{
			ID:        "admin",
			FirstName: "Site",
			LastName:  "Administrator",
			Email:     email,
		},
		LoginTime: at,
	}
}
