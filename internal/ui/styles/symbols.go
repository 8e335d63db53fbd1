package styles

import "github.com/raphi011/tbl/internal/table"

// Symbols holds the icon/symbol set based on nerdfont configuration
type Symbols struct {
	SortAsc  string
	SortDesc string
	Filter   string
	Range    string
}

// Default symbols (ASCII-safe)
var defaultSymbols = Symbols{
	SortAsc:  "▲",
	SortDesc: "▼",
	Filter:   "*",
	Range:    "↔",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	SortAsc:  "", // nf-fa-sort_asc
	SortDesc: "", // nf-fa-sort_desc
	Filter:   "", // nf-fa-filter
	Range:    "", // nf-fa-arrows_h
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// SortSymbol returns the marker of a sort direction, empty when unsorted
func SortSymbol(d table.SortDirection) string {
	switch d {
	case table.SortAscending:
		return currentSymbols.SortAsc
	case table.SortDescending:
		return currentSymbols.SortDesc
	default:
		return ""
	}
}

// HeaderLabel decorates a column header with its sort and filter markers.
func HeaderLabel(label string, d table.SortDirection, filtered bool) string {
	if filtered {
		label += " " + currentSymbols.Filter
	}
	if s := SortSymbol(d); s != "" {
		label += " " + s
	}
	return label
}
