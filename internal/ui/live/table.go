package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	positionWidth = 4
	statusWidth   = 10
	letterWidth   = 7
	minTextWidth  = 20
	defaultWidth  = 80
)

// headerLines covers the header row and its bottom border.
const headerLines = 2

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

// columnsForWidth sizes the question column to the terminal width.
func columnsForWidth(width int) []table.Column {
	if width <= 0 {
		width = defaultWidth
	}
	textWidth := width - positionWidth - statusWidth - 2*letterWidth - 10
	if textWidth < minTextWidth {
		textWidth = minTextWidth
	}
	return []table.Column{
		{Title: "#", Width: positionWidth},
		{Title: "Result", Width: statusWidth},
		{Title: "Yours", Width: letterWidth},
		{Title: "Correct", Width: letterWidth},
		{Title: "Question", Width: textWidth},
	}
}

// rowsForReview converts review rows into table rows.
func rowsForReview(review Review, textWidth int) []table.Row {
	rows := make([]table.Row, 0, len(review.Rows))
	for _, row := range review.Rows {
		rows = append(rows, table.Row{
			formatPosition(row.Position),
			formatStatus(row),
			row.Given,
			row.Expected,
			formatQuestionText(row.Text, textWidth),
		})
	}
	return rows
}
