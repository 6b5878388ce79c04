// Package sessions persists the single current-session record. The record's
// presence is the sole "authenticated" signal; at most one exists at a time.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/realtydesk/internal/models"
)

type Repository interface {
	// Get returns the current session, or (nil, nil) when the slot is absent
	// or holds something that cannot be read as a session.
	Get(ctx context.Context) (*models.Session, error)

	// Set overwrites the session slot with the given record.
	Set(ctx context.Context, sess *models.Session) error

	// Clear removes the session slot. Idempotent.
	Clear(ctx context.Context) error
}
