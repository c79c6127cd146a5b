package cli

import (
	"flag"
	"fmt"
	"io"

	"quizmgr/internal/store"
)

func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		storage := addStorageFlags(fs, false)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := loadSettings(storage)
		if err != nil {
			fmt.Fprintf(stderr, "Config invalid: %v\n", err)
			return ExitError
		}
		if resolved.configPath != "" {
			fmt.Fprintf(stdout, "Config OK: %s\n", resolved.configPath)
		} else {
			fmt.Fprintln(stdout, "Config OK: built-in defaults")
		}

		backend := resolved.backend()
		if backend == nil {
			fmt.Fprintln(stdout, "Storage disabled; built-in questions are used.")
			return ExitOK
		}
		exists, err := backend.Exists()
		if err != nil {
			fmt.Fprintf(stderr, "Questions invalid: %v\n", err)
			return ExitError
		}
		if !exists {
			fmt.Fprintf(stdout, "Questions: %s is missing; the defaults will be written on first run.\n", backend.Name())
			return ExitOK
		}

		questions, report, err := store.Load(backend)
		if err != nil {
			fmt.Fprintf(stderr, "Questions invalid: %v\n", err)
			return ExitError
		}
		if report.Rejected > 0 {
			fmt.Fprintf(stderr, "Questions invalid: %s has %d malformed row(s) out of %d\n", backend.Name(), report.Rejected, report.Rows)
			for _, issue := range report.Issues {
				fmt.Fprintf(stderr, "  %s\n", issue)
			}
			return ExitError
		}
		fmt.Fprintf(stdout, "Questions OK: %s (%d rows, %d of %d slots filled)\n", backend.Name(), report.Rows, questions.FilledCount(), store.Capacity)
		return ExitOK
	}
}
