package prompt

import (
	"context"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/tbl/internal/ui/styles"
)

// Answer is the user's decision about an existing file.
type Answer int

const (
	// Keep leaves the existing file alone. It is the default.
	Keep Answer = iota
	// Replace overwrites the file.
	Replace
	// Backup renames the file to BackupPath before writing the new one.
	Backup
)

func (a Answer) String() string {
	switch a {
	case Replace:
		return "replace"
	case Backup:
		return "backup"
	default:
		return "keep"
	}
}

// BackupPath is where Backup moves an existing file.
func BackupPath(path string) string {
	return path + ".bak"
}

type overwriteModel struct {
	what   string
	path   string
	answer Answer
	done   bool
}

func (m overwriteModel) Init() tea.Cmd {
	return nil
}

func (m overwriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer = Replace
	case "b", "B":
		m.answer = Backup
	case "n", "N", "enter", "esc", "q", "ctrl+c":
		m.answer = Keep
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m overwriteModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	question := m.what + " " + styles.Bold.Render(filepath.Base(m.path)) + " already exists. Overwrite?"
	hint := styles.MutedStyle.Render("[y/b/N] (b keeps " + filepath.Base(BackupPath(m.path)) + ")")
	return tea.NewView(question + " " + hint + " ")
}

// Overwrite asks on stderr whether an existing file may be replaced.
// what names the file to the user, e.g. "Sidecar config". Enter, esc and
// ctrl+c all answer Keep.
func Overwrite(ctx context.Context, what, path string) (Answer, error) {
	p := tea.NewProgram(overwriteModel{what: what, path: path},
		tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return Keep, err
	}
	return final.(overwriteModel).answer, nil
}
