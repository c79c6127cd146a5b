package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewFiltersBelowLevel verifies level filtering on the console core.
func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Console: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("expected info to be filtered: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn output: %q", buf.String())
	}
}

// TestNewVerboseEnablesDebug verifies verbose overrides the level.
func TestNewVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "error", Verbose: true, Console: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("details")
	if !strings.Contains(buf.String(), "details") {
		t.Fatalf("expected debug output: %q", buf.String())
	}
}

// TestNewWritesFile verifies the rotated file sink receives JSON lines.
func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quizmgr.log")
	logger, err := New(Options{Level: "info", File: path, Console: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("persisted")
	_ = logger.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"persisted"`) {
		t.Fatalf("expected JSON log line, got %q", string(data))
	}
}

// TestNewRejectsUnknownLevel verifies level validation.
func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
