package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var numberStripper = strings.NewReplacer("¥", "", "￥", "", "$", "", ",", "")

// ParseNumber parses a plain or currency-formatted number.
// Currency symbols and grouping commas are removed before parsing.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(numberStripper.Replace(s))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// DateLayouts are the layouts ParseDate tries, in order.
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006-01",
}

// ParseDate parses a calendar date or date-time. Values without a zone
// are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseSpec parses a filter expression of the form COLUMN:KIND:VALUE.
//
// For range kinds VALUE is FROM..TO where either side may be empty
// ("2.00.." is "at least 2.00"); a VALUE without ".." fixes both bounds.
// For text and select kinds VALUE is taken verbatim.
func ParseSpec(expr string) (column string, kind Kind, from, to string, err error) {
	parts := strings.SplitN(expr, ":", 3)
	if len(parts) != 3 || parts[0] == "" {
		return "", KindText, "", "", fmt.Errorf("%w: %q (want COLUMN:KIND:VALUE)", ErrInvalidSpec, expr)
	}

	column = parts[0]
	kind, err = ParseKind(parts[1])
	if err != nil {
		return "", KindText, "", "", fmt.Errorf("%w: %q: %w", ErrInvalidSpec, expr, err)
	}

	value := parts[2]
	if !kind.IsRange() {
		return column, kind, value, "", nil
	}
	if lo, hi, ok := strings.Cut(value, ".."); ok {
		return column, kind, lo, hi, nil
	}
	return column, kind, value, value, nil
}

// FormatSpec renders a criterion as an expression ParseSpec accepts.
func FormatSpec(c Criterion) string {
	from, to := c.Bounds()
	if !c.Kind().IsRange() {
		return fmt.Sprintf("%s:%s:%s", c.Column(), c.Kind(), from)
	}
	return fmt.Sprintf("%s:%s:%s..%s", c.Column(), c.Kind(), from, to)
}
