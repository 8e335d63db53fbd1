package filter

import (
	"fmt"
	"strings"
)

// Kind is the type of filter input a column uses.
type Kind int

const (
	// KindText matches a substring of string cells.
	KindText Kind = iota
	// KindDecimal matches a plain numeric range.
	KindDecimal
	// KindJPY matches a yen amount range.
	KindJPY
	// KindUSD matches a dollar amount range.
	KindUSD
	// KindDate matches a calendar date range.
	KindDate
	// KindSelect matches a value picked from the column's distinct values.
	KindSelect
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{KindText, KindDecimal, KindJPY, KindUSD, KindDate, KindSelect}

// String returns the canonical name of a Kind, as accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindDecimal:
		return "dec"
	case KindJPY:
		return "JPY"
	case KindUSD:
		return "USD"
	case KindDate:
		return "date"
	case KindSelect:
		return "select"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// IsRange reports whether the kind takes a from/to pair.
func (k Kind) IsRange() bool {
	switch k {
	case KindDecimal, KindJPY, KindUSD, KindDate:
		return true
	}
	return false
}

// IsNumeric reports whether the kind compares parsed numbers.
func (k Kind) IsNumeric() bool {
	return k == KindDecimal || k == KindJPY || k == KindUSD
}

// Symbol returns the currency symbol for JPY and USD, empty otherwise.
func (k Kind) Symbol() string {
	switch k {
	case KindJPY:
		return "¥"
	case KindUSD:
		return "$"
	}
	return ""
}

// ParseKind parses a kind name. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return KindText, nil
	case "dec", "decimal", "numeric", "number":
		return KindDecimal, nil
	case "jpy":
		return KindJPY, nil
	case "usd":
		return KindUSD, nil
	case "date":
		return KindDate, nil
	case "select", "categorical":
		return KindSelect, nil
	default:
		return KindText, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
