package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether the answer review opens in the live browser.
type uiModeDecision struct {
	useLive bool
	// input is the terminal the browser reads keys from when useLive is set.
	input   *os.File
	warning string
}

// isTerminal reports whether a stream is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode decides whether the live review browser may run. The browser
// needs both streams on a terminal, and it reads keys from the stdin file
// itself so it never competes with the line prompter's buffer.
func resolveUIMode(mode string, verbose bool, stdin io.Reader, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto", "live", "plain":
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if verbose || normalized == "plain" {
		return uiModeDecision{}, nil
	}

	input, inputTTY := terminalInput(stdin)
	if inputTTY && isTerminal(stdout) {
		return uiModeDecision{useLive: true, input: input}, nil
	}
	if normalized == "live" {
		return uiModeDecision{
			warning: "Live UI requested but stdin or stdout is not a TTY; falling back to plain output.",
		}, nil
	}
	return uiModeDecision{}, nil
}

// terminalInput returns stdin as a file when it is an interactive terminal.
func terminalInput(stdin io.Reader) (*os.File, bool) {
	file, ok := stdin.(*os.File)
	if !ok || file == nil {
		return nil, false
	}
	return file, isTerminal(file)
}

func defaultIsTerminal(stream io.Writer) bool {
	if stream == nil {
		return false
	}
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
