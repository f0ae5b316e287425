package ports

import "github.com/AntonioJCosta/replsh/internal/core/domain/settings"

/*
SettingsRepository defines the interface for loading and persisting the
shell configuration. This is a driven port, typically implemented by a
repository adapter that understands a specific file format.
*/
type SettingsRepository interface {
	// Load reads the persisted settings. A missing or empty settings
	// file yields the defaults, not an error.
	Load() (settings.Settings, error)

	// Save persists cfg, creating the settings file and its directory
	// when necessary.
	Save(cfg settings.Settings) error
}
