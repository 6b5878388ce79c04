package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/realtydesk/internal/storage"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value so a partial config file
// only overrides what it names.
type JsonConfig struct {
	StorageDriver *string `json:"storage_driver"`
	StateDir      *string `json:"state_dir"`
	Verbose       *bool   `json:"verbose"`
}

// parseJson overlays cfg with values from the named JSON file. An empty
// path means no file was requested and is not an error.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if jc.StorageDriver != nil {
		cfg.StorageDriver = storage.Driver(*jc.StorageDriver)
	}
	if jc.StateDir != nil {
		cfg.StateDir = *jc.StateDir
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
	return nil
}
