package dataset

import "errors"

// Common errors returned by the dataset package.
var (
	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrColumnNotFound is returned when a column reference matches no label or index.
	ErrColumnNotFound = errors.New("column not found")

	// ErrDuplicateLabel is returned when two columns share a label.
	ErrDuplicateLabel = errors.New("duplicate column label")

	// ErrEmptyLabel is returned when a column label is empty.
	ErrEmptyLabel = errors.New("empty column label")

	// ErrUnsupportedFormat is returned when a file extension has no loader.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
