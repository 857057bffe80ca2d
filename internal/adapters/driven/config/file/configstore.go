// Package file is a TOML-backed implementation of the config store
// port. The file is optional; a fresh install has no configuration.
package file

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/permalink-cli/permalink/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore reads user preferences from a TOML file.
type ConfigStore struct {
	filePath string
	data     map[string]any
}

// NewConfigStore loads config.toml from configDir. If configDir is
// empty it defaults to $XDG_CONFIG_HOME/permalink, falling back to
// ~/.config/permalink. A missing file is not an error.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		base := os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(base, "permalink")
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

func (s *ConfigStore) load() error {
	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	return toml.Unmarshal(raw, &s.data)
}

// GetString retrieves a string configuration value.
// Returns empty string if the key is absent or isn't a string.
func (s *ConfigStore) GetString(key string) string {
	str, _ := s.data[key].(string)
	return str
}

// GetBool retrieves a boolean configuration value.
// Returns false if the key is absent or isn't a boolean.
func (s *ConfigStore) GetBool(key string) bool {
	b, _ := s.data[key].(bool)
	return b
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
