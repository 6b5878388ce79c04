// Package storage provides the named-slot store backing RealtyDesk's
// persisted state. A slot is one byte value under a string key — the local
// analog of a browser localStorage entry. The application uses exactly two
// slots: the serialized user list and the serialized current session.
package storage

import (
	"context"
	"fmt"
)

// Slot keys used by the application.
const (
	SlotUsers   = "realtydesk.users"
	SlotSession = "realtydesk.session"
)

// SlotStore is implemented by every storage driver.
//
// Contract:
//   - Get returns (nil, nil) when the slot is absent.
//   - Set unconditionally overwrites. Concurrent writers are not merged;
//     the last write wins.
//   - Delete is idempotent.
type SlotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Driver selects a slot store backend.
type Driver string

// Driver names accepted by Open.
const (
	DriverSQLite Driver = "sqlite"
	DriverFile   Driver = "file"
	DriverMemory Driver = "memory"
)

// Open builds the slot store selected by driver, keeping its state under dir.
// The memory driver ignores dir and forgets everything on Close.
func Open(ctx context.Context, driver Driver, dir string) (SlotStore, error) {
	switch driver {
	case DriverSQLite:
		return NewSQLiteStore(ctx, dir)
	case DriverFile:
		return NewFileStore(dir)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
