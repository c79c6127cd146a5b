package config

// Config is the quiz manager configuration file.
type Config struct {
	Version   int           `yaml:"version"`
	Team      string        `yaml:"team"`
	Capacity  int           `yaml:"capacity"`
	Randomize bool          `yaml:"randomize"`
	Storage   StorageConfig `yaml:"storage"`
	Menu      MenuConfig    `yaml:"menu"`
	UI        UIConfig      `yaml:"ui"`
	Log       LogConfig     `yaml:"log"`
}

// StorageConfig controls question persistence.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// MenuConfig controls the main menu loop.
type MenuConfig struct {
	OneShot bool `yaml:"one_shot"`
}

// UIConfig controls console presentation.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
