package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values, lowercases enumerations, and resolves the
// storage path against baseDir.
func Normalize(cfg *Config, baseDir string) {
	cfg.Team = strings.TrimSpace(cfg.Team)
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Storage.Path = resolvePath(strings.TrimSpace(cfg.Storage.Path), baseDir)
	cfg.Log.File = resolvePath(strings.TrimSpace(cfg.Log.File), baseDir)
}

func resolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
