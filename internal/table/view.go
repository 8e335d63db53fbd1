package table

import (
	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/filter"
)

// Line is one rendered row.
type Line struct {
	// Index is the row's position in the dataset.
	Index     int
	Cells     []string
	Highlight Highlight
}

// View adapts an Engine for rendering. The zero value of every optional
// field keeps the dataset as is.
type View struct {
	Engine *filter.Engine
	Sort   SortState

	// Columns selects the shown columns by label; nil shows all.
	Columns func(label string) bool
	// Highlight colours rows; nil leaves every row unhighlighted.
	Highlight HighlightFunc
	// ReplaceLabel renames a column header.
	ReplaceLabel func(label string) string
	// ReplaceValue formats a cell; nil uses the value's display form.
	ReplaceValue func(label string, v dataset.Value, index int) string
}

// NewView returns a View over e showing every column.
func NewView(e *filter.Engine) *View {
	return &View{Engine: e}
}

// Labels returns the labels of the shown columns in display order.
func (v *View) Labels() []string {
	labels := v.Engine.Dataset().Labels
	if v.Columns == nil {
		return labels
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if v.Columns(l) {
			out = append(out, l)
		}
	}
	return out
}

// Headers returns the header texts of the shown columns.
func (v *View) Headers() []string {
	labels := v.Labels()
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l
		if v.ReplaceLabel != nil {
			out[i] = v.ReplaceLabel(l)
		}
	}
	return out
}

// Indices renders the engine once and returns the visible row indices in
// display order.
func (v *View) Indices() []int {
	rows := v.Engine.Render()
	sortIndices(v.Engine.Dataset(), rows, v.Sort)
	return rows
}

// Rows renders the engine once and returns the visible lines in display order.
func (v *View) Rows() []Line {
	ds := v.Engine.Dataset()
	labels := v.Labels()
	indices := v.Indices()

	lines := make([]Line, 0, len(indices))
	for _, idx := range indices {
		row := ds.Rows[idx]
		cells := make([]string, len(labels))
		for c, l := range labels {
			if v.ReplaceValue != nil {
				cells[c] = v.ReplaceValue(l, row[l], idx)
			} else {
				cells[c] = row[l].String()
			}
		}
		line := Line{Index: idx, Cells: cells}
		if v.Highlight != nil {
			line.Highlight = v.Highlight(row, idx)
		}
		lines = append(lines, line)
	}
	return lines
}

// Cycle advances the sort of column: none, ascending, descending, none.
// Sorting a different column starts at ascending.
func (v *View) Cycle(column string) SortState {
	if v.Sort.Column != column {
		v.Sort = SortState{Column: column, Direction: SortAscending}
		return v.Sort
	}
	next := v.Sort.Direction.Next()
	if next == SortNone {
		v.Sort = SortState{}
	} else {
		v.Sort.Direction = next
	}
	return v.Sort
}
