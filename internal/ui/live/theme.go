package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DividerWidth is the width of section dividers.
const DividerWidth = 60

// Theme styles console text. A no-color theme returns text unchanged.
type Theme struct {
	noColor bool
}

// NewTheme returns a theme, optionally without colour.
func NewTheme(noColor bool) Theme {
	return Theme{noColor: noColor}
}

// Plain returns a theme that never styles text.
func Plain() Theme {
	return Theme{noColor: true}
}

// NoColor reports whether styling is disabled.
func (t Theme) NoColor() bool {
	return t.noColor
}

// Divider renders a horizontal rule.
func (t Theme) Divider() string {
	return stylize(strings.Repeat("-", DividerWidth), t.noColor, lipgloss.Color("240"))
}

// Heading renders a section title.
func (t Theme) Heading(text string) string {
	if t.noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Render(text)
}

// Success renders a positive outcome.
func (t Theme) Success(text string) string {
	return stylize(text, t.noColor, lipgloss.Color("42"))
}

// Failure renders a negative outcome.
func (t Theme) Failure(text string) string {
	return stylize(text, t.noColor, lipgloss.Color("196"))
}

// Warning renders a cautionary message.
func (t Theme) Warning(text string) string {
	return stylize(text, t.noColor, lipgloss.Color("220"))
}

// Muted renders secondary text.
func (t Theme) Muted(text string) string {
	return stylize(text, t.noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
