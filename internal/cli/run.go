package cli

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"quizmgr/internal/logging"
	"quizmgr/internal/prompt"
	"quizmgr/internal/store"
	"quizmgr/internal/ui/live"
)

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		storage := addStorageFlags(fs, true)
		noShuffle := fs.Bool("no-shuffle", false, "Present questions in slot order")
		seed := fs.Int64("seed", 0, "Seed for the question shuffle (0 uses the clock)")
		oneShot := fs.Bool("one-shot", false, "Exit after the first admin or student session")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (default from config)")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		verbose := fs.Bool("verbose", false, "Enable debug logging")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := loadSettings(storage)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		cfg := resolved.cfg
		if *uiMode != "" {
			cfg.UI.Mode = *uiMode
		}

		logger, err := logging.New(logging.Options{
			Level:   cfg.Log.Level,
			Verbose: *verbose,
			File:    cfg.Log.File,
			Console: stderr,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		in := stdinInput
		if in == nil {
			in = os.Stdin
		}
		decision, err := resolveUIMode(cfg.UI.Mode, *verbose, in, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid UI mode: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		backend := resolved.backend()
		questions, report, err := store.Load(backend)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		logLoadReport(logger, report)

		var rng *rand.Rand
		shuffle := cfg.Randomize && !*noShuffle
		if shuffle {
			value := *seed
			if value == 0 {
				value = time.Now().UnixNano()
			}
			logger.Debug("shuffle seeded", zap.Int64("seed", value))
			rng = rand.New(rand.NewSource(value))
		}

		s := &session{
			store:   questions,
			backend: backend,
			prompt:  prompt.New(in, stdout),
			out:     stdout,
			theme:   live.NewTheme(cfg.UI.NoColor || *noColor),
			logger:  logger,
			team:    cfg.Team,
			oneShot: cfg.Menu.OneShot || *oneShot,
			shuffle: shuffle,
			rng:     rng,
			tty:     decision.input,
		}
		return s.exitStatus(s.loop(), stderr)
	}
}

func logLoadReport(logger *zap.Logger, report store.LoadReport) {
	fields := []zap.Field{
		zap.String("source", report.Source),
		zap.Bool("created", report.Created),
		zap.Int("rows", report.Rows),
		zap.Int("rejected", report.Rejected),
		zap.Int("padded", report.Padded),
		zap.Int("truncated", report.Truncated),
	}
	if report.Rejected > 0 {
		issues := make([]string, 0, len(report.Issues))
		for _, issue := range report.Issues {
			issues = append(issues, issue.String())
		}
		logger.Warn("skipped malformed question rows", append(fields, zap.Strings("issues", issues))...)
		return
	}
	logger.Info("questions loaded", fields...)
}
