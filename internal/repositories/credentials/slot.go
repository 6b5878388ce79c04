package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/realtydesk/internal/logging"
	"github.com/dmitrijs2005/realtydesk/internal/models"
	"github.com/dmitrijs2005/realtydesk/internal/storage"
)

const schemaVersion = 1

// envelope is the persisted shape of the users slot. Version 0 — a bare JSON
// array, the layout of early builds — is migrated on read. Payloads from a
// future schema are treated as unreadable rather than guessed at.
type envelope struct {
	SchemaVersion int                 `json:"schema_version"`
	Users         []models.UserRecord `json:"users"`
}

// SlotRepository implements Repository over a storage.SlotStore.
type SlotRepository struct {
	store storage.SlotStore
	log   logging.Logger
}

func NewSlotRepository(store storage.SlotStore, log logging.Logger) *SlotRepository {
	return &SlotRepository{store: store, log: log}
}

func (r *SlotRepository) GetUsers(ctx context.Context) ([]models.UserRecord, error) {
	raw, err := r.store.Get(ctx, storage.SlotUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read users slot: %w", err)
	}
	if len(raw) == 0 {
		return []models.UserRecord{}, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.SchemaVersion != 0 {
		if env.SchemaVersion != schemaVersion {
			r.log.Warn(ctx, "users slot has unknown schema version, treating as empty",
				"version", env.SchemaVersion)
			return []models.UserRecord{}, nil
		}
		if env.Users == nil {
			return []models.UserRecord{}, nil
		}
		return env.Users, nil
	}

	// Version 0: the bare array layout.
	var legacy []models.UserRecord
	if err := json.Unmarshal(raw, &legacy); err == nil {
		r.log.Debug(ctx, "migrated version-0 users slot on read", "count", len(legacy))
		return legacy, nil
	}

	r.log.Warn(ctx, "users slot is unreadable, treating as empty")
	return []models.UserRecord{}, nil
}

func (r *SlotRepository) SaveUsers(ctx context.Context, users []models.UserRecord) error {
	if users == nil {
		users = []models.UserRecord{}
	}

	raw, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Users: users})
	if err != nil {
		return fmt.Errorf("failed to serialize users: %w", err)
	}
	if err := r.store.Set(ctx, storage.SlotUsers, raw); err != nil {
		return fmt.Errorf("failed to write users slot: %w", err)
	}
	return nil
}
