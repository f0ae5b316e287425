package testutil

import "github.com/AntonioJCosta/replsh/internal/core/domain/settings"

// MockSettingsRepository is a mock implementation of
// ports.SettingsRepository backed by an in-memory value.
type MockSettingsRepository struct {
	LoadFunc func() (settings.Settings, error)
	SaveFunc func(cfg settings.Settings) error

	Stored settings.Settings
	Saves  int
}

// Load returns the stored settings, or defers to LoadFunc when set.
func (m *MockSettingsRepository) Load() (settings.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return m.Stored, nil
}

// Save stores cfg, or defers to SaveFunc when set.
func (m *MockSettingsRepository) Save(cfg settings.Settings) error {
	m.Saves++
	if m.SaveFunc != nil {
		return m.SaveFunc(cfg)
	}
	m.Stored = cfg
	return nil
}
