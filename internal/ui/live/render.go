package live

import "github.com/charmbracelet/lipgloss"

// renderHeader renders the review title line.
func renderHeader(review Review, noColor bool) string {
	if noColor {
		return review.Title
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Render(review.Title)
}

// renderSummary renders the score line.
func renderSummary(review Review, noColor bool) string {
	return stylize(review.Summary, noColor, lipgloss.Color("242"))
}

// renderFooter renders key help.
func renderFooter(noColor bool) string {
	return stylize("up/down scroll | q, esc or enter to close", noColor, lipgloss.Color("244"))
}
