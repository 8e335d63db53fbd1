package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// Row is one record, keyed by column label.
type Row map[string]Value

// Dataset is an ordered sequence of rows with ordered, unique column labels.
type Dataset struct {
	// ID namespaces the dataset (widget ids, clipboard payloads).
	ID string
	// Title is the display title.
	Title string
	// Labels are the column labels in display order.
	Labels []string
	// Rows are the records in display order.
	Rows []Row

	index map[string]int
}

// New creates a dataset and validates its labels.
// An empty title gets a generated ID; otherwise the title doubles as ID.
func New(title string, labels []string, rows []Row) (*Dataset, error) {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("%w: column %d", ErrEmptyLabel, i)
		}
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		index[label] = i
	}

	id := title
	if id == "" {
		id = uuid.NewString()
	}

	return &Dataset{
		ID:     id,
		Title:  title,
		Labels: labels,
		Rows:   rows,
		index:  index,
	}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Row returns the row at index i.
func (d *Dataset) Row(i int) (Row, error) {
	if i < 0 || i >= len(d.Rows) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	return d.Rows[i], nil
}

// Label returns the label of column i.
func (d *Dataset) Label(i int) (string, error) {
	if i < 0 || i >= len(d.Labels) {
		return "", fmt.Errorf("%w: %d", ErrInvalidColumn, i)
	}
	return d.Labels[i], nil
}

// ColumnIndex returns the position of a label.
func (d *Dataset) ColumnIndex(label string) (int, bool) {
	i, ok := d.index[label]
	return i, ok
}

// Resolve turns a column reference (label or decimal index) into a label.
func (d *Dataset) Resolve(ref string) (string, error) {
	if _, ok := d.index[ref]; ok {
		return ref, nil
	}
	if i, err := strconv.Atoi(ref); err == nil {
		if label, err := d.Label(i); err == nil {
			return label, nil
		}
	}
	if hint := d.suggest(ref); hint != "" {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrColumnNotFound, ref, hint)
	}
	return "", fmt.Errorf("%w: %q", ErrColumnNotFound, ref)
}

// suggest returns the closest label within a small edit distance.
func (d *Dataset) suggest(ref string) string {
	best := ""
	bestDist := 3
	for _, label := range d.Labels {
		dist := levenshtein.ComputeDistance(ref, label)
		if dist < bestDist {
			best, bestDist = label, dist
		}
	}
	return best
}

// Distinct returns the distinct string values of a column in first-appearance order.
// Non-string values are skipped.
func (d *Dataset) Distinct(label string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range d.Rows {
		s, ok := row[label].AsString()
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Bounds returns the numeric extent of a column.
// parse converts non-number cells; cells it rejects are ignored.
// ok is false when no cell yields a number.
func (d *Dataset) Bounds(label string, parse func(string) (float64, bool)) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range d.Rows {
		v := row[label]
		n, isNum := v.AsNumber()
		if !isNum && parse != nil {
			if s, isStr := v.AsString(); isStr {
				n, isNum = parse(s)
			}
		}
		if !isNum {
			continue
		}
		lo = math.Min(lo, n)
		hi = math.Max(hi, n)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
