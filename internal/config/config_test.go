package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, payload string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestParseKeepsDefaultsForMissingFields verifies partial files inherit defaults.
func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\nrandomize: false\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Randomize {
		t.Fatalf("expected randomize override")
	}
	if !cfg.Storage.Enabled || cfg.Storage.Path != DefaultStoragePath {
		t.Fatalf("expected default storage, got %+v", cfg.Storage)
	}
	if cfg.Team != DefaultTeam || cfg.Capacity != DefaultCapacity {
		t.Fatalf("expected default team and capacity, got %+v", cfg)
	}
}

// TestParseEmptyDocument verifies an empty file yields the defaults.
func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

// TestParseRejectsUnknownFields verifies strict decoding.
func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("version: 1\nshuffle: true\n")); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseRejectsMultipleDocs(t *testing.T) {
	if _, err := Parse([]byte("version: 1\n---\nversion: 1\n")); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}

// TestLoadResolvesStoragePath verifies relative paths resolve against the project root.
func TestLoadResolvesStoragePath(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\nstorage:\n  path: data/q.csv\nui:\n  mode: PLAIN\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Path != filepath.Join(root, "data", "q.csv") {
		t.Fatalf("unexpected storage path %q", cfg.Storage.Path)
	}
	if cfg.UI.Mode != "plain" {
		t.Fatalf("expected normalized ui mode, got %q", cfg.UI.Mode)
	}
}

// TestValidateCollectsIssues verifies every problem is reported.
func TestValidateCollectsIssues(t *testing.T) {
	cfg := Default()
	cfg.Version = 2
	cfg.Capacity = 10
	cfg.Storage.Path = ""
	cfg.UI.Mode = "fancy"
	cfg.Log.Level = "loud"

	err := Validate(&cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Issues) != 5 {
		t.Fatalf("expected 5 issues, got %d: %v", len(validationErr.Issues), err)
	}
	for _, field := range []string{"version", "capacity", "storage.path", "ui.mode", "log.level"} {
		if !strings.Contains(err.Error(), field+":") {
			t.Fatalf("expected %s issue in %q", field, err.Error())
		}
	}
}

// TestValidateStorageDisabledSkipsPath verifies a missing path is fine without storage.
func TestValidateStorageDisabledSkipsPath(t *testing.T) {
	cfg := Default()
	cfg.Storage = StorageConfig{Enabled: false}
	if err := Validate(&cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

// TestValidateStorageDirectory verifies a directory storage path is rejected.
func TestValidateStorageDirectory(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = t.TempDir()
	err := Validate(&cfg)
	if err == nil || !strings.Contains(err.Error(), "storage.path") {
		t.Fatalf("expected storage.path issue, got %v", err)
	}
}

// TestFindConfigPathWalksUp verifies discovery from nested directories.
func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if ProjectRootFromConfigPath(got) != root {
		t.Fatalf("expected root %q, got %q", root, ProjectRootFromConfigPath(got))
	}
}

// TestFindConfigPathMissing verifies ErrConfigNotFound.
func TestFindConfigPathMissing(t *testing.T) {
	if _, err := FindConfigPath(t.TempDir()); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

// TestScaffoldWritesLoadableConfig verifies the scaffold round-trips through Load.
func TestScaffoldWritesLoadableConfig(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if cfg.Storage.Path != filepath.Join(root, DefaultStoragePath) {
		t.Fatalf("unexpected storage path %q", cfg.Storage.Path)
	}
	if err := Scaffold(path); err == nil {
		t.Fatalf("expected error when config exists")
	}
}
