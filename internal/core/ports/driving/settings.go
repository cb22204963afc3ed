package driving

import "github.com/custodia-labs/issueblog/internal/core/domain"

// SettingSource tells where the effective value of a setting came from.
type SettingSource string

// Setting sources, lowest precedence first.
const (
	SettingSourceDefault SettingSource = "default"
	SettingSourceConfig  SettingSource = "config"
	SettingSourceEnv     SettingSource = "env"
)

// SettingEntry is one configuration key with its effective value.
type SettingEntry struct {
	Key    string
	Value  string
	Source SettingSource
	Secret bool
}

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: defaults, then the config file,
	// then environment overrides.
	Get() (*domain.Settings, error)

	// Entries lists every known key with its effective value.
	Entries() []SettingEntry

	// Set validates and persists one configuration value.
	Set(key, value string) error

	// SetToken persists the GitHub access token.
	SetToken(token string) error
}
