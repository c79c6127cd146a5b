package testutil

import (
	"io"
	"os"
	"strings"
	"testing"
)

// Script returns a reader that yields each line followed by a newline,
// the way a user would type answers at the prompt.
func Script(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// ScriptFile is Script backed by the read end of an OS pipe, for code that
// only accepts input from an *os.File.
func ScriptFile(t *testing.T, lines ...string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	if _, err := io.Copy(w, Script(lines...)); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close pipe writer: %v", err)
	}
	return r
}
