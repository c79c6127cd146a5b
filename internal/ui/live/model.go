package live

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the review browser.
type Options struct {
	NoColor bool
}

// Model is a Bubble Tea model that pages through a quiz review.
type Model struct {
	review  Review
	table   table.Model
	noColor bool
	closed  bool
}

// NewModel constructs a review model.
func NewModel(review Review, opts Options) Model {
	columns := columnsForWidth(defaultWidth)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rowsForReview(review, columns[len(columns)-1].Width)),
		table.WithFocused(true),
		table.WithHeight(len(review.Rows)+headerLines+1),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		review:  review,
		table:   t,
		noColor: opts.NoColor,
	}
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resizing, scrolling and closing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		columns := columnsForWidth(typed.Width)
		m.table.SetColumns(columns)
		m.table.SetRows(rowsForReview(m.review, columns[len(columns)-1].Width))
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(min(typed.Height-4, len(m.review.Rows)+headerLines+1), headerLines+1))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "enter", "ctrl+c":
			m.closed = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the review.
func (m Model) View() string {
	if m.closed {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.review, m.noColor),
		renderSummary(m.review, m.noColor),
		m.table.View(),
		renderFooter(m.noColor),
	)
}

// Closed reports whether the user dismissed the review.
func (m Model) Closed() bool {
	return m.closed
}
