package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizmgr/internal/question"
)

// CancelToken aborts a numeric selection, compared case-insensitively.
const CancelToken = "q"

// ErrInputClosed is returned when input ends before a valid answer arrives.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on an output stream and reads answers line by line.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New returns a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// Out returns the stream prompts are written to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Int reads an integer in [min, max]. It returns ok=false when the user
// enters the cancel token, and loops on anything else that is not a plain
// decimal number in range.
func (p *Prompter) Int(label string, min, max int) (int, bool, error) {
	for {
		line, err := p.ask(label)
		if err != nil {
			return 0, false, err
		}
		raw := strings.TrimSpace(line)
		if strings.EqualFold(raw, CancelToken) {
			return 0, false, nil
		}
		if n, valid := parseBounded(raw, min, max); valid {
			return n, true, nil
		}
		fmt.Fprintf(p.out, "Invalid input. Enter a number between %d and %d, or '%s' to cancel.\n", min, max, CancelToken)
	}
}

// NonEmpty reads a line until it contains something other than whitespace.
// The accepted line is returned as typed.
func (p *Prompter) NonEmpty(label string) (string, error) {
	for {
		line, err := p.ask(label)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Input cannot be empty.")
	}
}

// Letter reads an answer letter A through D in either case.
func (p *Prompter) Letter(label string) (question.Letter, error) {
	for {
		line, err := p.ask(label)
		if err != nil {
			return question.A, err
		}
		if letter, ok := question.ParseLetter(strings.TrimSpace(line)); ok {
			return letter, nil
		}
		fmt.Fprintln(p.out, "Invalid answer. Please enter A, B, C, or D.")
	}
}

// ask writes label and reads one line without its line ending.
func (p *Prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseBounded accepts only ASCII digit strings whose value lies in [min, max].
func parseBounded(raw string, min, max int) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if n < min || n > max {
		return 0, false
	}
	return n, true
}
