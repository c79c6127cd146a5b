package quiz

import (
	"fmt"
	"io"

	"quizmgr/internal/ui/live"
)

// WriteResults prints the score block followed by the answer review.
func WriteResults(w io.Writer, theme live.Theme, result Result) {
	fmt.Fprintln(w, theme.Divider())
	fmt.Fprintln(w, theme.Heading("RESULTS"))
	fmt.Fprintf(w, "Score: %d out of %d\n", result.Score(), result.Total())
	fmt.Fprintf(w, "Percentage: %s%%\n", FormatPercentage(result.Percentage()))

	fmt.Fprintln(w, theme.Divider())
	fmt.Fprintln(w, theme.Heading("ANSWER REVIEW"))
	for _, answer := range result.Answers {
		status := theme.Success("Correct")
		if !answer.Correct() {
			status = theme.Failure("Incorrect")
		}
		fmt.Fprintf(w, "Q%d: %s (Your: %s, Correct: %s)\n", answer.Position, status, answer.Given, answer.Question.Answer)
		fmt.Fprintf(w, "   %s\n", answer.Question.Text)
	}
	if result.SessionID != "" {
		fmt.Fprintln(w, theme.Muted("Session "+result.SessionID))
	}
}

// Review converts a result into rows for the review browser.
func Review(result Result) live.Review {
	rows := make([]live.ReviewRow, 0, len(result.Answers))
	for _, answer := range result.Answers {
		rows = append(rows, live.ReviewRow{
			Position: answer.Position,
			Correct:  answer.Correct(),
			Given:    answer.Given.String(),
			Expected: answer.Question.Answer.String(),
			Text:     answer.Question.Text,
		})
	}
	return live.Review{
		Title:   "ANSWER REVIEW",
		Summary: fmt.Sprintf("Score: %d out of %d (%s%%) | Session %s", result.Score(), result.Total(), FormatPercentage(result.Percentage()), result.SessionID),
		Rows:    rows,
	}
}
