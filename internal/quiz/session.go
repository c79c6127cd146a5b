package quiz

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quizmgr/internal/prompt"
	"quizmgr/internal/question"
	"quizmgr/internal/ui/live"
)

// Options configures a Session.
type Options struct {
	// Shuffle randomizes presentation order.
	Shuffle bool
	// Rand drives the shuffle. A time-seeded source is used when nil.
	Rand   *rand.Rand
	Theme  live.Theme
	Logger *zap.Logger
	// NewID generates session identifiers; uuid.NewString by default.
	NewID func() string
}

// Session asks every pool question once and grades the answers.
// It never modifies the source.
type Session struct {
	src    Source
	prompt *prompt.Prompter
	out    io.Writer
	opts   Options
	logger *zap.Logger
}

// NewSession returns a session over src.
func NewSession(src Source, p *prompt.Prompter, opts Options) *Session {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Shuffle && opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{src: src, prompt: p, out: p.Out(), opts: opts, logger: logger}
}

// Run presents the questions, collects answers, and prints the results
// and the answer review.
func (s *Session) Run() (Result, error) {
	theme := s.opts.Theme
	fmt.Fprintln(s.out, theme.Divider())
	fmt.Fprintln(s.out, theme.Heading("STUDENT MODE: TAKE TEST"))

	pool := BuildPool(s.src)
	var rng *rand.Rand
	if s.opts.Shuffle {
		rng = s.opts.Rand
	}
	order := Order(len(pool), rng)
	sessionID := s.opts.NewID()
	s.logger.Debug("quiz session started", zap.String("session", sessionID), zap.Ints("order", order))

	given := make([]question.Letter, 0, len(order))
	for i, slot := range order {
		q := pool[slot]
		fmt.Fprintln(s.out, theme.Divider())
		fmt.Fprintf(s.out, "Question %d of %d\n", i+1, len(order))
		fmt.Fprintln(s.out, q.Text)
		for _, letter := range question.Letters() {
			fmt.Fprintf(s.out, "  %s. %s\n", letter, q.Choice(letter))
		}
		letter, err := s.prompt.Letter("Your answer (A/B/C/D): ")
		if err != nil {
			return Result{}, err
		}
		given = append(given, letter)
	}

	result := Grade(sessionID, pool, order, given)
	s.logger.Info("quiz session finished",
		zap.String("session", sessionID),
		zap.Int("score", result.Score()),
		zap.Int("total", result.Total()),
	)
	WriteResults(s.out, theme, result)
	return result, nil
}
