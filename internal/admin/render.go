package admin

import (
	"fmt"
	"io"

	"quizmgr/internal/question"
	"quizmgr/internal/ui/live"
)

// WriteSlots lists questions with their 1-based slot numbers.
// Unfilled slots print as an empty marker.
func WriteSlots(w io.Writer, theme live.Theme, questions []question.Question) {
	for i, q := range questions {
		if q.Filled() {
			WriteQuestion(w, q, i+1)
			continue
		}
		fmt.Fprintf(w, "Question %d: %s\n", i+1, theme.Muted("[Empty slot]"))
	}
}

// WriteQuestion prints a question with its choices and correct answer.
// A slot of 0 omits the number.
func WriteQuestion(w io.Writer, q question.Question, slot int) {
	if slot > 0 {
		fmt.Fprintf(w, "Question %d: %s\n", slot, q.Text)
	} else {
		fmt.Fprintln(w, q.Text)
	}
	for _, letter := range question.Letters() {
		fmt.Fprintf(w, "  %s. %s\n", letter, q.Choice(letter))
	}
	fmt.Fprintf(w, "Correct Answer: %s\n", q.Answer)
}
