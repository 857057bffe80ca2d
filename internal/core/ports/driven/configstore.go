package driven

// ConfigStore provides read access to persisted user preferences.
// Implementations handle persistence (e.g., TOML files) and type
// conversion. The CLI never writes configuration; users edit the file.
type ConfigStore interface {
	// GetString retrieves a string configuration value.
	// Returns empty string if the key is absent or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if the key is absent or isn't a boolean.
	GetBool(key string) bool

	// Path returns the configuration file path.
	Path() string
}
