package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Project is a temporary quiz manager working directory.
type Project struct {
	Root string
}

// NewProject creates an empty project directory and makes it the working
// directory for the rest of the test.
func NewProject(t *testing.T) *Project {
	t.Helper()
	root := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir %s: %v", root, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return &Project{Root: root}
}

// Path joins elem onto the project root.
func (p *Project) Path(elem ...string) string {
	return filepath.Join(append([]string{p.Root}, elem...)...)
}

// ConfigPath is where the CLI looks for the project config.
func (p *Project) ConfigPath() string {
	return p.Path(".quizmgr", "config.yml")
}

// QuestionsPath is the default question file location.
func (p *Project) QuestionsPath() string {
	return p.Path("questions.csv")
}

// WriteConfig writes body to the project config file.
func (p *Project) WriteConfig(t *testing.T, body string) string {
	t.Helper()
	WriteFile(t, p.ConfigPath(), body)
	return p.ConfigPath()
}

// WriteQuestions writes the given CSV lines to the default question file.
func (p *Project) WriteQuestions(t *testing.T, lines ...string) string {
	t.Helper()
	WriteFile(t, p.QuestionsPath(), strings.Join(lines, "\n")+"\n")
	return p.QuestionsPath()
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// ReadRows parses path as CSV.
func ReadRows(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer file.Close()
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}
