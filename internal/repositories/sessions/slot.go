package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/realtydesk/internal/logging"
	"github.com/dmitrijs2005/realtydesk/internal/models"
	"github.com/dmitrijs2005/realtydesk/internal/storage"
)

const schemaVersion = 1

type envelope struct {
	SchemaVersion int            `json:"schema_version"`
	Session       models.Session `json:"session"`
}

// legacySession is the version-0 layout: the user fields flattened into the
// record itself, with role/isAdmin markers instead of a variant tag.
type legacySession struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"isAdmin"`
	LoginTime time.Time `json:"loginTime"`
}

// SlotRepository implements Repository over a storage.SlotStore.
type SlotRepository struct {
	store storage.SlotStore
	log   logging.Logger
}

func NewSlotRepository(store storage.SlotStore, log logging.Logger) *SlotRepository {
	return &SlotRepository{store: store, log: log}
}

func (r *SlotRepository) Get(ctx context.Context) (*models.Session, error) {
	raw, err := r.store.Get(ctx, storage.SlotSession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session slot: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.SchemaVersion == schemaVersion {
		if !env.Session.Valid() {
			r.log.Warn(ctx, "session slot holds an unknown variant, ignoring")
			return nil, nil
		}
		sess := env.Session
		return &sess, nil
	}

	// Version 0: a flat record tagged by role/isAdmin.
	var legacy legacySession
	if err := json.Unmarshal(raw, &legacy); err == nil && legacy.ID != "" {
		r.log.Debug(ctx, "migrated version-0 session slot on read")
		return migrateLegacy(legacy), nil
	}

	// Malformed sessions are ignored, not surfaced: the caller just sees
	// "not authenticated".
	r.log.Warn(ctx, "session slot is unreadable, ignoring")
	return nil, nil
}

func migrateLegacy(l legacySession) *models.Session {
	if l.IsAdmin || l.Role == "admin" {
		return models.NewAdminSession(l.Email, l.LoginTime)
	}
	return models.NewUserSession(models.UserRecord{
		ID:        l.ID,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
	}, l.LoginTime)
}

func (r *SlotRepository) Set(ctx context.Context, sess *models.Session) error {
	raw, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Session: *sess})
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := r.store.Set(ctx, storage.SlotSession, raw); err != nil {
		return fmt.Errorf("failed to write session slot: %w", err)
	}
	return nil
}

func (r *SlotRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.SlotSession); err != nil {
		return fmt.Errorf("failed to clear session slot: %w", err)
	}
	return nil
}
