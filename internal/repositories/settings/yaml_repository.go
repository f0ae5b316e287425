/*
Package settings loads and saves the shell configuration as a YAML
file. A missing or empty file yields the defaults, so a fresh install
works without any setup.
*/
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/replsh/internal/core/domain/settings"
	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

// YAMLRepository implements the SettingsRepository port on a YAML file.
type YAMLRepository struct {
	filePath string
}

// NewYAMLRepository creates a repository reading and writing filePath.
func NewYAMLRepository(filePath string) (ports.SettingsRepository, error) {
	if filePath == "" {
		return nil, fmt.Errorf("settings file path cannot be empty")
	}
	return &YAMLRepository{filePath: filePath}, nil
}

// DefaultPath returns the settings file location under the user's
// configuration directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating the user config directory: %w", err)
	}
	return filepath.Join(configDir, "replsh", "settings.yaml"), nil
}

// Load reads the persisted settings. Fields absent from the file keep
// their default values, and unknown fields are rejected so typos in the
// file surface instead of being silently dropped.
func (r *YAMLRepository) Load() (settings.Settings, error) {
	loaded := settings.Default()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return loaded, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", r.filePath, err)
	}
	if len(data) == 0 {
		return loaded, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&loaded); err != nil {
		// A file holding only comments or a bare document marker decodes
		// to nothing; that is the same as an empty file.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", r.filePath, err)
	}

	return loaded, nil
}

// Save persists cfg, creating the settings file and its directory when
// necessary.
func (r *YAMLRepository) Save(cfg settings.Settings) error {
	dirPath := filepath.Dir(r.filePath)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dirPath, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(r.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", r.filePath, err)
	}
	return nil
}
