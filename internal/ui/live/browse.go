package live

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Browse shows review in a full-screen table until the user closes it.
func Browse(in io.Reader, out io.Writer, review Review, opts Options) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	program := tea.NewProgram(NewModel(review, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run review browser: %w", err)
	}
	return nil
}
