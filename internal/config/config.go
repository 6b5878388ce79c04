// Package config resolves runtime settings for the RealtyDesk CLI.
//
// Sources are layered: built-in defaults, then an optional JSON file, then
// command-line overrides. Later sources take precedence over earlier ones.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/realtydesk/internal/storage"
)

// Config holds runtime settings for the RealtyDesk CLI.
//
// Fields:
//   - StorageDriver: which slot store backend to open ("sqlite", "file", "memory").
//   - StateDir: directory holding the local database / slot files.
//   - Verbose: enables debug-level logging.
type Config struct {
	StorageDriver storage.Driver
	StateDir      string
	Verbose       bool
}

// Overrides carries values resolved from command-line flags. Zero values
// mean "not set" and leave the underlying config untouched.
type Overrides struct {
	ConfigFile    string
	StorageDriver string
	StateDir      string
	Verbose       bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = storage.DriverSQLite
	c.StateDir = defaultStateDir()
	c.Verbose = false
}

// defaultStateDir resolves the per-user state directory, falling back to a
// dot directory in the working directory when the OS config dir is unknown.
func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".realtydesk"
	}
	return filepath.Join(base, "realtydesk")
}

// Load constructs a Config, applies defaults, then overlays values from
// JSON (if a config file is named) and the command-line overrides.
func Load(o Overrides) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, o.ConfigFile); err != nil {
		return nil, err
	}

	if o.StorageDriver != "" {
		cfg.StorageDriver = storage.Driver(o.StorageDriver)
	}
	if o.StateDir != "" {
		cfg.StateDir = o.StateDir
	}
	if o.Verbose {
		cfg.Verbose = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case storage.DriverSQLite, storage.DriverFile, storage.DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.StateDir == "" {
		return fmt.Errorf("state dir must not be empty")
	}
	return nil
}
