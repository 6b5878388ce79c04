// Package models defines the data records RealtyDesk persists: registered
// user accounts and the current session.
package models

import (
	"strings"
	"time"
)

// UserRecord is a registered account as persisted in the credential store.
//
// The password is stored as plain text and compared as an exact string: the
// system models a demo site whose entire auth scheme lives in storage the
// user can read, and that observed behavior is part of the contract. Nothing
// built on this store may treat it as a security boundary.
type UserRecord struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// Email is the uniqueness key; comparisons are case-insensitive.
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	// LastLoginAt stays zero until the account completes its first login.
	LastLoginAt time.Time `json:"lastLoginAt,omitempty"`
}

// EmailMatches reports whether the record's email equals addr, compared
// case-insensitively.
func (u *UserRecord) EmailMatches(addr string) bool {
	return strings.EqualFold(u.Email, addr)
}

// HasLoggedIn reports whether the account has completed at least one login.
func (u *UserRecord) HasLoggedIn() bool {
	return !u.LastLoginAt.IsZero()
}

// FullName joins the name fields for display.
func (u *UserRecord) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
