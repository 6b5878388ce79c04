package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/realtydesk/internal/common"
	"github.com/dmitrijs2005/realtydesk/internal/logging"
	"github.com/dmitrijs2005/realtydesk/internal/models"
	"github.com/dmitrijs2005/realtydesk/internal/repositories/credentials"
)

// StatusFilter narrows account listings by login history.
type StatusFilter string

const (
	StatusAny    StatusFilter = "any"
	StatusActive StatusFilter = "active" // has logged in at least once
	StatusNever  StatusFilter = "never"  // registered but never logged in
)

// ParseStatusFilter maps user input to a StatusFilter; empty means any.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusAny:
		return StatusAny, nil
	case StatusActive:
		return StatusActive, nil
	case StatusNever:
		return StatusNever, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q (want active, never or any)", common.ErrValidation, s)
	}
}

// AccountFilter selects accounts for the admin dashboard listing.
type AccountFilter struct {
	// Query is matched case-insensitively as a substring of the first name,
	// last name, full name, or email. Empty matches everything.
	Query  string
	Status StatusFilter
}

// AccountsService is the admin dashboard's view of the credential store.
type AccountsService struct {
	users  credentials.Repository
	logger logging.Logger
}

func NewAccountsService(users credentials.Repository, logger logging.Logger) *AccountsService {
	return &AccountsService{users: users, logger: logger}
}

// List returns registered accounts matching the filter. Records carrying the
// synthetic admin identity never appear, whatever the store contains.
func (s *AccountsService) List(ctx context.Context, f AccountFilter) ([]models.UserRecord, error) {
	list, err := s.users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.UserRecord, 0, len(list))
	for i := range list {
		u := list[i]
		if isAdminRecord(&u) {
			continue
		}
		if !matchesQuery(&u, f.Query) {
			continue
		}
		switch f.Status {
		case StatusActive:
			if !u.HasLoggedIn() {
				continue
			}
		case StatusNever:
			if u.HasLoggedIn() {
				continue
			}
		}
		out = append(out, u)
	}
	return out, nil
}

// Delete removes the record with the given id and re-persists the full list.
// Records carrying an admin identity are refused even if one somehow made it
// into the store.
func (s *AccountsService) Delete(ctx context.Context, id string) error {
	list, err := s.users.GetUsers(ctx)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		if isAdminRecord(&list[i]) {
			s.logger.Warn(ctx, "refused to delete admin-looking record", "user_id", id)
			return fmt.Errorf("%w: admin accounts cannot be deleted", common.ErrNotAuthorized)
		}
		next := append(list[:i], list[i+1:]...)
		if err := s.users.SaveUsers(ctx, next); err != nil {
			return err
		}
		s.logger.Info(ctx, "account deleted", "user_id", id)
		return nil
	}

	return common.ErrNotFound
}

func isAdminRecord(u *models.UserRecord) bool {
	return u.ID == "admin" || isAdminBypassEmail(u.Email)
}

func matchesQuery(u *models.UserRecord, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{u.FirstName, u.LastName, u.FullName(), u.Email} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
