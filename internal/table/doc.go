// Package table turns a filter engine's visible rows into what a renderer
// draws: the shown columns, the sorted lines and each line's highlight.
//
// Sorting and highlighting never change which rows are visible. Highlight
// rules are evaluated per row, independently of the active filters.
package table
