// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the filtered table
// printed by `tbl show`.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	lgtable "charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/tbl/internal/table"
	"github.com/raphi011/tbl/internal/ui/styles"
)

// Ellipsis marks a truncated cell.
const Ellipsis = "…"

// RenderTable creates a formatted table with proper column alignment.
// Headers and lines are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
//
// Each line is coloured by its highlight level. Cells wider than maxWidth
// are truncated; maxWidth 0 disables truncation.
func RenderTable(headers []string, lines []table.Line, maxWidth int) string {
	if len(lines) == 0 {
		return ""
	}

	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = make([]string, len(l.Cells))
		for c, cell := range l.Cells {
			rows[i][c] = Truncate(cell, maxWidth)
		}
	}

	var output strings.Builder

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
				return styles.HeaderStyle.PaddingRight(2)
			}
			if row >= 0 && row < len(lines) {
				return styles.Level(lines[row].Highlight).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// Truncate shortens s to at most width cells, ending in Ellipsis.
// Width 0 or less returns s unchanged.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// RenderTSV writes headers and lines as tab-separated text without styling,
// for output that is not a terminal.
func RenderTSV(headers []string, lines []table.Line) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, "\t"))
	b.WriteByte('\n')
	for _, l := range lines {
		b.WriteString(strings.Join(l.Cells, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}
