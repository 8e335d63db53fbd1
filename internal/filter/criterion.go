package filter

import (
	"fmt"
	"strings"

	"github.com/raphi011/tbl/internal/dataset"
)

// Criterion is one column's active filter condition.
// The set of implementations is closed: Text, Categorical, Numeric and Date.
type Criterion interface {
	// Column returns the label of the filtered column.
	Column() string
	// Kind returns the input kind the criterion was built from.
	Kind() Kind
	// Bounds returns the raw inputs; single-value kinds return the value as from.
	Bounds() (from, to string)
	// Match reports whether a cell satisfies the criterion.
	Match(v dataset.Value) bool
	// Description renders a short human summary.
	Description() string

	criterion()
}

// Text matches string cells containing Value.
type Text struct {
	Label string
	Value string
}

// Categorical matches string cells containing the picked Value.
type Categorical struct {
	Label string
	Value string
}

// Numeric matches cells whose parsed number lies in [From, To].
// Kind selects the currency the inputs were entered in.
type Numeric struct {
	Label    string
	Currency Kind
	From     string
	To       string
}

// Date matches cells whose parsed date lies in [From, To].
type Date struct {
	Label string
	From  string
	To    string
}

func (Text) criterion()        {}
func (Categorical) criterion() {}
func (Numeric) criterion()     {}
func (Date) criterion()        {}

func (c Text) Column() string        { return c.Label }
func (c Categorical) Column() string { return c.Label }
func (c Numeric) Column() string     { return c.Label }
func (c Date) Column() string        { return c.Label }

func (Text) Kind() Kind        { return KindText }
func (Categorical) Kind() Kind { return KindSelect }
func (Date) Kind() Kind        { return KindDate }

func (c Numeric) Kind() Kind {
	if c.Currency.IsNumeric() {
		return c.Currency
	}
	return KindDecimal
}

func (c Text) Bounds() (string, string)        { return c.Value, "" }
func (c Categorical) Bounds() (string, string) { return c.Value, "" }
func (c Numeric) Bounds() (string, string)     { return c.From, c.To }
func (c Date) Bounds() (string, string)        { return c.From, c.To }

func (c Text) Match(v dataset.Value) bool        { return Match(c, v) }
func (c Categorical) Match(v dataset.Value) bool { return Match(c, v) }
func (c Numeric) Match(v dataset.Value) bool     { return Match(c, v) }
func (c Date) Match(v dataset.Value) bool        { return Match(c, v) }

func (c Text) Description() string {
	return fmt.Sprintf("%s contains %q", c.Label, c.Value)
}

func (c Categorical) Description() string {
	return fmt.Sprintf("%s is %q", c.Label, c.Value)
}

func (c Numeric) Description() string {
	sym := c.Kind().Symbol()
	return fmt.Sprintf("%s in %s", c.Label, describeRange(c.From, c.To, func(s string) string {
		return sym + strings.TrimLeft(s, "¥$")
	}))
}

func (c Date) Description() string {
	return fmt.Sprintf("%s in %s", c.Label, describeRange(c.From, c.To, func(s string) string { return s }))
}

func describeRange(from, to string, format func(string) string) string {
	lo, hi := "-∞", "∞"
	if from != "" {
		lo = format(from)
	}
	if to != "" {
		hi = format(to)
	}
	open, close := "[", "]"
	if from == "" {
		open = "("
	}
	if to == "" {
		close = ")"
	}
	return open + lo + ", " + hi + close
}

// NewCriterion builds the criterion variant for kind.
// It returns false when the inputs are empty: both bounds for range kinds,
// the value (from) for text and select.
func NewCriterion(column string, kind Kind, from, to string) (Criterion, bool) {
	switch kind {
	case KindText:
		if from == "" {
			return nil, false
		}
		return Text{Label: column, Value: from}, true
	case KindSelect:
		if from == "" {
			return nil, false
		}
		return Categorical{Label: column, Value: from}, true
	case KindDecimal, KindJPY, KindUSD:
		if from == "" && to == "" {
			return nil, false
		}
		return Numeric{Label: column, Currency: kind, From: from, To: to}, true
	case KindDate:
		if from == "" && to == "" {
			return nil, false
		}
		return Date{Label: column, From: from, To: to}, true
	default:
		return nil, false
	}
}

// Match evaluates a criterion against one cell.
// Cells that cannot be compared fail.
func Match(c Criterion, v dataset.Value) bool {
	switch c := c.(type) {
	case Text:
		return containsString(v, c.Value)
	case Categorical:
		return containsString(v, c.Value)
	case Numeric:
		n, ok := numericCell(v)
		if !ok {
			return false
		}
		if lo, ok := ParseNumber(c.From); ok && n < lo {
			return false
		}
		if hi, ok := ParseNumber(c.To); ok && n > hi {
			return false
		}
		return true
	case Date:
		s, ok := v.AsString()
		if !ok {
			return false
		}
		at, ok := ParseDate(s)
		if !ok {
			return false
		}
		if lo, ok := ParseDate(c.From); ok && at.Before(lo) {
			return false
		}
		if hi, ok := ParseDate(c.To); ok && at.After(hi) {
			return false
		}
		return true
	default:
		return false
	}
}

func containsString(v dataset.Value, sub string) bool {
	s, ok := v.AsString()
	if !ok {
		return false
	}
	return strings.Contains(s, sub)
}

// numericCell reads a number cell directly and parses string cells.
func numericCell(v dataset.Value) (float64, bool) {
	if n, ok := v.AsNumber(); ok {
		return n, true
	}
	if s, ok := v.AsString(); ok {
		return ParseNumber(s)
	}
	return 0, false
}
