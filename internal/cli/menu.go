package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"quizmgr/internal/admin"
	"quizmgr/internal/prompt"
	"quizmgr/internal/quiz"
	"quizmgr/internal/store"
	"quizmgr/internal/ui/live"
)

// Main menu options.
const (
	menuAdmin = iota + 1
	menuStudent
	menuExit
)

// browseReview opens the live answer review; replaced in tests.
var browseReview = live.Browse

// session holds everything one run of the main menu needs.
type session struct {
	store   *store.Store
	backend store.Backend
	prompt  *prompt.Prompter
	out     io.Writer
	theme   live.Theme
	logger  *zap.Logger
	team    string
	oneShot bool
	shuffle bool
	rng     *rand.Rand
	// tty receives keys for the live answer review; nil keeps the review plain.
	tty     *os.File
	// saved is set once the store was written to the backend.
	saved   bool
}

// loop shows the main menu until the user exits. Input exhaustion is
// returned as prompt.ErrInputClosed after the questions are persisted.
func (s *session) loop() error {
	s.banner()
	for {
		s.section("MAIN MENU")
		fmt.Fprintln(s.out, "1. Admin Mode (Manage Questions)")
		fmt.Fprintln(s.out, "2. Student Mode (Take Test)")
		fmt.Fprintln(s.out, "3. Exit")
		choice, ok, err := s.prompt.Int("Select an option (1-3): ", menuAdmin, menuExit)
		if err != nil {
			return s.abort(err)
		}
		if !ok || choice == menuExit {
			return s.exit()
		}

		switch choice {
		case menuAdmin:
			err = admin.New(s.store, s.prompt, admin.Options{Theme: s.theme, Logger: s.logger}).Run()
		case menuStudent:
			err = s.student()
		}
		if err != nil {
			return s.abort(err)
		}

		if s.oneShot {
			fmt.Fprintln(s.out, "\nInterrupted. Exiting...")
			return nil
		}
	}
}

func (s *session) student() error {
	result, err := quiz.NewSession(s.store, s.prompt, quiz.Options{
		Shuffle: s.shuffle,
		Rand:    s.rng,
		Theme:   s.theme,
		Logger:  s.logger,
	}).Run()
	if err != nil {
		return err
	}
	if s.tty == nil {
		return nil
	}
	if err := browseReview(s.tty, s.out, quiz.Review(result), live.Options{NoColor: s.theme.NoColor()}); err != nil {
		s.logger.Warn("answer review unavailable", zap.Error(err))
	}
	return nil
}

func (s *session) exit() error {
	if err := s.persist(); err != nil {
		return err
	}
	if s.backend != nil {
		fmt.Fprintln(s.out, s.theme.Success("Changes saved to CSV."))
	}
	fmt.Fprintln(s.out, "Goodbye!")
	return nil
}

// abort persists what the user entered so far before surfacing err.
func (s *session) abort(err error) error {
	if errors.Is(err, prompt.ErrInputClosed) {
		if saveErr := s.persist(); saveErr != nil {
			return errors.Join(err, saveErr)
		}
	}
	return err
}

func (s *session) persist() error {
	if s.backend == nil {
		return nil
	}
	if err := store.Save(s.backend, s.store); err != nil {
		return err
	}
	s.saved = true
	s.logger.Info("questions saved",
		zap.String("source", s.backend.Name()),
		zap.Int("filled", s.store.FilledCount()),
	)
	return nil
}

func (s *session) banner() {
	fmt.Fprintln(s.out, s.theme.Divider())
	fmt.Fprintln(s.out, s.theme.Heading("MULTIPLE CHOICE QUIZ MANAGER"))
	fmt.Fprintln(s.out, "Array-based CLI application")
	if s.team != "" {
		fmt.Fprintln(s.out, s.theme.Muted("Team "+s.team))
	}
	fmt.Fprintln(s.out, s.theme.Divider())
}

func (s *session) section(title string) {
	fmt.Fprintln(s.out, s.theme.Divider())
	fmt.Fprintln(s.out, s.theme.Heading(title))
}

// exitStatus reports how the menu ended and maps it to an exit code.
func (s *session) exitStatus(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, prompt.ErrInputClosed) && s.saved:
		fmt.Fprintln(stderr, "Input closed; questions saved.")
	case errors.Is(err, prompt.ErrInputClosed) && s.backend == nil:
		fmt.Fprintln(stderr, "Input closed.")
	default:
		fmt.Fprintf(stderr, "Quiz manager failed: %v\n", err)
	}
	return ExitError
}
