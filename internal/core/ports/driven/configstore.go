package driven

// ConfigStore persists configuration as dot-separated keys
// such as "github.owner".
type ConfigStore interface {
	// Get returns the raw value for key.
	Get(key string) (any, bool)

	// GetString returns the value for key as a string, or "".
	GetString(key string) string

	// GetInt returns the value for key as an int, or 0.
	GetInt(key string) int

	// Set stores a value. Call Save to persist it.
	Set(key string, value any) error

	// Save writes the configuration to storage.
	Save() error

	// Load reads the configuration from storage.
	Load() error

	// Path returns the location of the configuration.
	Path() string
}
