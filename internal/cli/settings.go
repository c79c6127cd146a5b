package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizmgr/internal/config"
	"quizmgr/internal/store"
)

// settings is the resolved configuration for one invocation.
type settings struct {
	cfg        config.Config
	configPath string
}

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadSettings loads the config file, falling back to the built-in defaults
// relative to the working directory when none is found, then applies the
// storage flag overrides.
func loadSettings(flags *storageFlags) (settings, error) {
	resolved, err := resolveConfigPath(flags.configPath)
	var out settings
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return settings{}, fmt.Errorf("get working directory: %w", wdErr)
		}
		cfg := config.Default()
		config.Normalize(&cfg, wd)
		out = settings{cfg: cfg}
	case err != nil:
		return settings{}, err
	default:
		cfg, err := config.Load(resolved)
		if err != nil {
			return settings{}, err
		}
		out = settings{cfg: cfg, configPath: resolved}
	}

	if path := strings.TrimSpace(flags.storage); path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return settings{}, fmt.Errorf("resolve storage path: %w", err)
		}
		out.cfg.Storage.Enabled = true
		out.cfg.Storage.Path = abs
	}
	if flags.noStorage {
		out.cfg.Storage.Enabled = false
	}
	if err := config.Validate(&out.cfg); err != nil {
		return settings{}, err
	}
	return out, nil
}

// backend returns the question file backend, or nil when storage is disabled.
func (s settings) backend() store.Backend {
	if !s.cfg.Storage.Enabled {
		return nil
	}
	return store.NewCSVFile(s.cfg.Storage.Path)
}
