package live

import (
	"strconv"
	"strings"
)

// formatPosition formats a presentation position.
func formatPosition(position int) string {
	return "Q" + strconv.Itoa(position)
}

// formatStatus renders the outcome label for a row.
func formatStatus(row ReviewRow) string {
	if row.Correct {
		return "Correct"
	}
	return "Incorrect"
}

// formatQuestionText collapses whitespace and truncates question text for display.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" || limit <= 3 {
		return normalized
	}
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}
