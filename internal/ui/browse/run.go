package browse

import (
	"context"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/tbl/internal/table"
)

// Run starts the browser and blocks until the user quits.
// The TUI renders to stderr so stdout remains available for piping.
// When the user opened a row, the WithOnCommand callback runs after the
// browser has closed.
func Run(ctx context.Context, view *table.View, opts ...Option) error {
	// Detect color profile for stderr (handles piped output, NO_COLOR, etc.)
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	m := New(view, opts...)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.command()
}
