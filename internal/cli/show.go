package cli

import (
	"flag"
	"fmt"
	"io"

	"quizmgr/internal/admin"
	"quizmgr/internal/store"
	"quizmgr/internal/ui/live"
)

func runShow(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		storage := addStorageFlags(fs, false)
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := loadSettings(storage)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		questions, report, err := store.Load(resolved.backend())
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		if report.Created {
			fmt.Fprintf(stderr, "Created %s with the default questions\n", report.Source)
		}

		theme := live.NewTheme(resolved.cfg.UI.NoColor || *noColor)
		admin.WriteSlots(stdout, theme, questions.All())
		return ExitOK
	}
}
