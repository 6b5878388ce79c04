package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileStore keeps each slot in its own file under a state directory, the
// most literal rendering of localStorage's named-slot layout.
//
// Every read and write takes a per-slot flock, so a value is never observed
// half-written by another process. The lock does NOT cover read-modify-write
// cycles: two processes updating the same slot still race, and the last
// write wins.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) slotPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) lockPath(key string) string {
	return filepath.Join(s.dir, key+".lock")
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	lock := flock.New(s.lockPath(key))
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to lock slot[%s]: %w", key, err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(s.slotPath(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot[%s]: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	lock := flock.New(s.lockPath(key))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock slot[%s]: %w", key, err)
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.WriteFile(s.slotPath(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write slot[%s]: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	lock := flock.New(s.lockPath(key))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock slot[%s]: %w", key, err)
	}
	defer func() { _ = lock.Unlock() }()

	err := os.Remove(s.slotPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete slot[%s]: %w", key, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
