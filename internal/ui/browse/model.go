package browse

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	lgtable "charm.land/lipgloss/v2/table"
	"github.com/atotto/clipboard"

	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/filter"
	"github.com/raphi011/tbl/internal/table"
	"github.com/raphi011/tbl/internal/ui/static"
	"github.com/raphi011/tbl/internal/ui/styles"
	"github.com/raphi011/tbl/internal/validate"
)

type mode int

const (
	modeTable mode = iota
	modeEdit
	modePick
)

// chromeLines is the number of screen lines used outside the table body:
// title, header, status, range bar, bordered widget and help.
const chromeLines = 9

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the clipboard writer used by the copy key.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// WithOnCommand sets the row command run by Run after the user opens a row
// with the open key. It receives the row and its dataset index.
func WithOnCommand(fn func(row dataset.Row, index int) error) Option {
	return func(m *Model) {
		m.onCommand = fn
	}
}

// WithMaxWidth truncates cells wider than n; 0 disables truncation.
func WithMaxWidth(n int) Option {
	return func(m *Model) {
		m.maxWidth = n
	}
}

// Model is the bubbletea model of the browser.
type Model struct {
	view   *table.View
	lines  []table.Line
	col    int
	cursor int
	offset int

	mode   mode
	editor *editor
	picker *picker

	width    int
	height   int
	maxWidth int
	message  string
	isError  bool
	copy     func(string) error

	onCommand func(dataset.Row, int) error
	chosen    int
	hasChosen bool
}

// New creates a browser over view.
func New(view *table.View, opts ...Option) *Model {
	m := &Model{
		view:   view,
		width:  80,
		height: 24,
		copy:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.refresh()
	return m
}

// Lines returns the rows currently shown, in display order.
func (m *Model) Lines() []table.Line {
	return m.lines
}

// Chosen returns the dataset index of the row opened with the open key.
func (m *Model) Chosen() (int, bool) {
	return m.chosen, m.hasChosen
}

// Column returns the label of the focused column.
func (m *Model) Column() string {
	labels := m.view.Labels()
	if len(labels) == 0 {
		return ""
	}
	return labels[m.col]
}

// refresh re-renders the view and keeps the cursor on a visible row.
func (m *Model) refresh() {
	m.lines = m.view.Rows()
	if m.cursor >= len(m.lines) {
		m.cursor = max(len(m.lines)-1, 0)
	}
	m.scroll()
}

func (m *Model) bodyHeight() int {
	return max(m.height-chromeLines, 1)
}

func (m *Model) scroll() {
	h := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = max(m.offset, 0)
}

func (m *Model) say(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.isError = false
}

func (m *Model) fail(err error) {
	m.message = err.Error()
	m.isError = true
}

// BubbleTea Model interface

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeEdit:
			return m.updateEditor(msg)
		case modePick:
			return m.updatePicker(msg)
		default:
			return m.updateTable(msg)
		}
	}
	return m, nil
}

func (m *Model) updateTable(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	ncols := len(m.view.Labels())
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < ncols-1 {
			m.col++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.lines)-1 {
			m.cursor++
		}
	case "pgup":
		m.cursor = max(m.cursor-m.bodyHeight(), 0)
	case "pgdown":
		m.cursor = max(min(m.cursor+m.bodyHeight(), len(m.lines)-1), 0)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.lines)-1, 0)
	case "f", "enter", "/":
		return m, m.openFilter()
	case "x":
		m.clearColumn()
	case "c":
		m.view.Engine.ClearFilters()
		m.say("cleared all filters")
		m.refresh()
	case "s":
		state := m.view.Cycle(m.Column())
		if state.IsSorted() {
			m.say("sorted by %s %s", state.Column, state.Direction)
		} else {
			m.say("unsorted")
		}
		m.refresh()
	case "y":
		m.copyIndices()
	case "o":
		if len(m.lines) == 0 {
			m.say("no row to open")
			break
		}
		m.chosen = m.lines[m.cursor].Index
		m.hasChosen = true
		return m, tea.Quit
	case "[":
		m.nudge(0, -1)
	case "]":
		m.nudge(0, 1)
	case "{":
		m.nudge(1, -1)
	case "}":
		m.nudge(1, 1)
	}
	m.scroll()
	return m, nil
}

// openFilter opens the widget of the focused column.
func (m *Model) openFilter() tea.Cmd {
	label := m.Column()
	if label == "" {
		return nil
	}
	engine := m.view.Engine
	kind, ok := engine.Kind(label)
	if !ok {
		m.fail(fmt.Errorf("%w: %q", filter.ErrNotFilterable, label))
		return nil
	}

	if kind == filter.KindSelect {
		options, err := engine.Options(label)
		if err != nil {
			m.fail(err)
			return nil
		}
		m.picker = newPicker(label, options)
		m.mode = modePick
		return nil
	}

	var from, to string
	if cur, ok := engine.Criterion(label); ok && cur.Kind() == kind {
		from, to = cur.Bounds()
	}
	m.editor = newEditor(label, kind, from, to)
	m.mode = modeEdit
	m.message = ""
	return nil
}

func (m *Model) updateEditor(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.editor = nil
		m.mode = modeTable
		return m, nil
	case "tab", "shift+tab":
		return m, m.editor.switchFocus()
	}

	value, changed, cmd := m.editor.update(msg)
	if !changed {
		return m, cmd
	}
	e := m.editor
	value = validate.Normalize(e.kind, value)
	if err := m.view.Engine.HandleChange(value, e.valid, e.label, e.subIndex()); err != nil {
		m.fail(err)
	} else {
		m.message = ""
	}
	m.refresh()
	return m, cmd
}

func (m *Model) updatePicker(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	p := m.picker
	engine := m.view.Engine
	switch msg.String() {
	case "esc":
		m.picker = nil
		m.mode = modeTable
		return m, nil
	case "up":
		p.move(-1)
	case "down":
		p.move(1)
	case "backspace":
		p.backspace()
	case "ctrl+x":
		if err := engine.HandleSelect("", -1, p.label); err != nil {
			m.fail(err)
		}
		m.picker = nil
		m.mode = modeTable
		m.refresh()
	case "enter":
		value, index, ok := p.selected()
		if !ok {
			return m, nil
		}
		if err := engine.HandleSelect(value, index, p.label); err != nil {
			m.fail(err)
		} else {
			m.say("%s is %q", p.label, value)
		}
		m.picker = nil
		m.mode = modeTable
		m.refresh()
	default:
		if msg.Text != "" {
			p.typed(msg.Text)
		}
	}
	return m, nil
}

func (m *Model) clearColumn() {
	label := m.Column()
	if label == "" {
		return
	}
	if _, ok := m.view.Engine.Criterion(label); !ok {
		m.say("%s has no filter", label)
		return
	}
	if err := m.view.Engine.HandleSelect("", -1, label); err != nil {
		m.fail(err)
		return
	}
	m.say("cleared filter on %s", label)
	m.refresh()
}

// command runs the row command on the opened row, if any.
func (m *Model) command() error {
	if !m.hasChosen || m.onCommand == nil {
		return nil
	}
	ds := m.view.Engine.Dataset()
	return m.onCommand(ds.Rows[m.chosen], m.chosen)
}

func (m *Model) copyIndices() {
	joined := filter.JoinIndices(m.view.Engine.VisibleRowIndices())
	if m.copy == nil {
		m.fail(errors.New("clipboard not available"))
		return
	}
	if err := m.copy(joined); err != nil {
		m.fail(fmt.Errorf("copy to clipboard: %w", err))
		return
	}
	m.say("copied %d row indices", len(m.lines))
}

func (m *Model) View() tea.View {
	var b strings.Builder

	ds := m.view.Engine.Dataset()
	if ds.Title != "" {
		b.WriteString(styles.PrimaryStyle.Bold(true).Render(ds.Title) + "\n")
	}
	b.WriteString(m.renderTable() + "\n")
	b.WriteString(m.statusLine() + "\n")
	if bar := m.rangeBar(); bar != "" {
		b.WriteString(bar + "\n")
	}

	switch m.mode {
	case modeEdit:
		b.WriteString(styles.RoundedBorder.Render(m.editor.view()) + "\n")
		b.WriteString(styles.MutedStyle.Render(m.editor.help()))
	case modePick:
		b.WriteString(m.picker.view() + "\n")
		b.WriteString(styles.MutedStyle.Render(m.picker.help()))
	default:
		if m.message != "" {
			style := styles.InfoStyle
			if m.isError {
				style = styles.ErrorStyle
			}
			b.WriteString(style.Render(m.message) + "\n")
		}
		b.WriteString(styles.MutedStyle.Render(tableHelp))
	}

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

const tableHelp = "←/→ column • ↑/↓ row • f filter • [/] low • {/} high • x clear • c clear all • s sort • y copy • o open • q quit"

func (m *Model) renderTable() string {
	labels := m.view.Labels()
	headers := m.view.Headers()
	filters := m.view.Engine.Filters()
	for i, l := range labels {
		dir := table.SortNone
		if m.view.Sort.Column == l {
			dir = m.view.Sort.Direction
		}
		_, filtered := filters.Get(l)
		headers[i] = styles.HeaderLabel(headers[i], dir, filtered)
	}

	end := min(m.offset+m.bodyHeight(), len(m.lines))
	window := m.lines[min(m.offset, end):end]
	rows := make([][]string, len(window))
	for i, l := range window {
		rows[i] = make([]string, len(l.Cells))
		for c, cell := range l.Cells {
			rows[i][c] = static.Truncate(cell, m.maxWidth)
		}
	}

	cursor := m.cursor - m.offset
	t := lgtable.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				if col == m.col {
					return styles.SelectedStyle.PaddingRight(2)
				}
				return styles.HeaderStyle.PaddingRight(2)
			}
			style := lipgloss.NewStyle()
			if row >= 0 && row < len(window) {
				style = styles.Level(window[row].Highlight)
			}
			if row == cursor {
				style = style.Reverse(true)
			}
			return style.PaddingRight(2)
		})
	return t.String()
}
