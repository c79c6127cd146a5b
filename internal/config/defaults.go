package config

// Built-in configuration values used when no config file is present.
const (
	DefaultTeam        = "Jaysonism"
	DefaultCapacity    = 5
	DefaultStoragePath = "questions.csv"
	DefaultUIMode      = "auto"
	DefaultLogLevel    = "warn"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version:   1,
		Team:      DefaultTeam,
		Capacity:  DefaultCapacity,
		Randomize: true,
		Storage: StorageConfig{
			Enabled: true,
			Path:    DefaultStoragePath,
		},
		UI: UIConfig{
			Mode: DefaultUIMode,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
