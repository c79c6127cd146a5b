package cli

import (
	"io"
	"strings"
	"testing"

	"quizmgr/internal/testutil"
)

// TestResolveUIMode verifies ui mode decision logic.
func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name       string
		mode       string
		verbose    bool
		isTTY      bool
		fileInput  bool
		expectLive bool
		wantWarn   bool
		wantErr    bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, fileInput: true, expectLive: true},
		{name: "auto non-tty", mode: "auto", isTTY: false, fileInput: true, expectLive: false},
		{name: "auto buffered stdin", mode: "auto", isTTY: true, fileInput: false, expectLive: false},
		{name: "empty means auto", mode: "", isTTY: true, fileInput: true, expectLive: true},
		{name: "plain", mode: "plain", isTTY: true, fileInput: true, expectLive: false},
		{name: "verbose disables", mode: "auto", verbose: true, isTTY: true, fileInput: true, expectLive: false},
		{name: "live tty", mode: "live", isTTY: true, fileInput: true, expectLive: true},
		{name: "live non-tty warning", mode: "live", isTTY: false, fileInput: true, wantWarn: true},
		{name: "live buffered stdin warning", mode: "live", isTTY: true, fileInput: false, wantWarn: true},
		{name: "invalid mode", mode: "nope", isTTY: true, wantErr: true},
		{name: "invalid mode with verbose", mode: "nope", verbose: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			var stdin io.Reader = strings.NewReader("")
			if tc.fileInput {
				stdin = testutil.ScriptFile(t)
			}
			decision, err := resolveUIMode(tc.mode, tc.verbose, stdin, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.useLive != tc.expectLive {
				t.Fatalf("expected useLive=%v, got %v", tc.expectLive, decision.useLive)
			}
			if decision.useLive && decision.input != stdin {
				t.Fatalf("expected the browser to read from the stdin file")
			}
			if !decision.useLive && decision.input != nil {
				t.Fatalf("did not expect an input file for plain output")
			}
			if tc.wantWarn != (decision.warning != "") {
				t.Fatalf("unexpected warning state: %q", decision.warning)
			}
		})
	}
}

func TestDefaultIsTerminalNonFile(t *testing.T) {
	if defaultIsTerminal(nil) {
		t.Fatalf("nil writer is not a terminal")
	}
	if defaultIsTerminal(io.Discard) {
		t.Fatalf("discard writer is not a terminal")
	}
	if _, ok := terminalInput(strings.NewReader("")); ok {
		t.Fatalf("a string reader is not a terminal")
	}
}
