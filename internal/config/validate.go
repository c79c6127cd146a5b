package config

import (
	"fmt"
	"os"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

var (
	uiModes   = []string{"auto", "live", "plain"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Capacity != DefaultCapacity {
		add("capacity", fmt.Sprintf("must be %d, got %d", DefaultCapacity, cfg.Capacity))
	}

	if cfg.Storage.Enabled {
		if cfg.Storage.Path == "" {
			add("storage.path", "is required when storage is enabled")
		} else if info, err := os.Stat(cfg.Storage.Path); err == nil && info.IsDir() {
			add("storage.path", fmt.Sprintf("path %q is a directory", cfg.Storage.Path))
		}
	}

	if !contains(uiModes, cfg.UI.Mode) {
		add("ui.mode", fmt.Sprintf("invalid mode %q (expected %s)", cfg.UI.Mode, strings.Join(uiModes, "|")))
	}
	if !contains(logLevels, cfg.Log.Level) {
		add("log.level", fmt.Sprintf("invalid level %q (expected %s)", cfg.Log.Level, strings.Join(logLevels, "|")))
	}
	if cfg.Log.File != "" {
		if info, err := os.Stat(cfg.Log.File); err == nil && info.IsDir() {
			add("log.file", fmt.Sprintf("path %q is a directory", cfg.Log.File))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
