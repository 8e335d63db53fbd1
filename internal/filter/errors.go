package filter

import "errors"

// Common errors returned by the filter package.
var (
	// ErrUnknownKind is returned when a filter kind name is not recognized.
	ErrUnknownKind = errors.New("unknown filter kind")

	// ErrNotFilterable is returned when a column has no configured filter kind.
	ErrNotFilterable = errors.New("column is not filterable")

	// ErrInvalidSubIndex is returned when a widget reports a bound other than "0" or "1".
	ErrInvalidSubIndex = errors.New("invalid filter input index")

	// ErrInvalidSpec is returned when a filter expression cannot be parsed.
	ErrInvalidSpec = errors.New("invalid filter expression")
)
