package table

import (
	"fmt"
	"strings"

	"github.com/raphi011/tbl/internal/dataset"
)

// Highlight is the colour level of a rendered row.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightInfo
	HighlightWarning
	HighlightError
	// HighlightBlind dims the row.
	HighlightBlind
)

func (h Highlight) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightInfo:
		return "info"
	case HighlightWarning:
		return "warning"
	case HighlightError:
		return "error"
	case HighlightBlind:
		return "blind"
	default:
		return fmt.Sprintf("unknown(%d)", int(h))
	}
}

// ParseHighlight parses a level name.
func ParseHighlight(s string) (Highlight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return HighlightNone, nil
	case "info":
		return HighlightInfo, nil
	case "warning", "warn":
		return HighlightWarning, nil
	case "error":
		return HighlightError, nil
	case "blind":
		return HighlightBlind, nil
	}
	return HighlightNone, fmt.Errorf("unknown highlight level %q (want none, info, warning, error or blind)", s)
}

// HighlightFunc picks the highlight of a row. It is called for visible
// rows only and does not affect visibility.
type HighlightFunc func(row dataset.Row, index int) Highlight

// Rule highlights rows whose Column cell contains or equals a value.
type Rule struct {
	Column   string
	Contains string
	Equals   string
	Level    Highlight
}

// Match reports whether the rule applies to row.
func (r Rule) Match(row dataset.Row) bool {
	v, ok := row[r.Column]
	if !ok {
		return false
	}
	s := v.String()
	if r.Equals != "" && s != r.Equals {
		return false
	}
	if r.Contains != "" && !strings.Contains(s, r.Contains) {
		return false
	}
	return r.Equals != "" || r.Contains != ""
}

// Rules is an ordered rule list; the first matching rule wins.
type Rules []Rule

// Func returns the list as a HighlightFunc, or nil when it is empty.
func (rs Rules) Func() HighlightFunc {
	if len(rs) == 0 {
		return nil
	}
	return func(row dataset.Row, _ int) Highlight {
		for _, r := range rs {
			if r.Match(row) {
				return r.Level
			}
		}
		return HighlightNone
	}
}
