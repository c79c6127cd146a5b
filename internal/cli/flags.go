package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// storageFlags are shared by every command that reads the question file.
type storageFlags struct {
	configPath string
	storage    string
	noStorage  bool
}

func addStorageFlags(flags *flag.FlagSet, withDisable bool) *storageFlags {
	values := &storageFlags{}
	flags.StringVar(&values.configPath, "config", "", "Path to config file (default: search for .quizmgr/config.yml)")
	flags.StringVar(&values.storage, "storage", "", "Override the question file path")
	if withDisable {
		flags.BoolVar(&values.noStorage, "no-storage", false, "Use built-in questions and never write the question file")
	}
	return values
}

// parseFlags parses args and reports the exit code to use on failure.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
