// Package credentials persists the registered-user list: the full collection
// serialized into a single storage slot.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/realtydesk/internal/models"
)

type Repository interface {
	// GetUsers returns the current list. An absent or unreadable slot yields
	// an empty list, never an error; corruption degrades to "no users".
	GetUsers(ctx context.Context) ([]models.UserRecord, error)

	// SaveUsers overwrites the persisted list with exactly the given records.
	// There is no merge and no partial-write protection.
	SaveUsers(ctx context.Context, users []models.UserRecord) error
}
