// Package browse implements the interactive table browser.
//
// The browser renders a table.View, lets the user move between columns and
// rows, and edits the focused column's filter in place. Every keystroke in
// a filter input is forwarded to the engine, so the table updates live.
// The model runs on the bubbletea update loop, which is the only goroutine
// that touches the engine.
package browse
