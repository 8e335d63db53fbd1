package filter

import (
	"fmt"
	"slices"

	"github.com/raphi011/tbl/internal/dataset"
)

// Set is the collection of active criteria, at most one per column.
// The zero value is an empty Set. A Set is never modified in place;
// With, Without and Apply return a new value.
type Set struct {
	order    []string
	criteria map[string]Criterion
}

// NewSet builds a Set from criteria. A later criterion for the same
// column replaces an earlier one.
func NewSet(criteria ...Criterion) Set {
	var s Set
	for _, c := range criteria {
		s = s.With(c)
	}
	return s
}

// Len returns the number of active criteria.
func (s Set) Len() int {
	return len(s.order)
}

// Get returns the criterion for column.
func (s Set) Get(column string) (Criterion, bool) {
	c, ok := s.criteria[column]
	return c, ok
}

// Criteria returns the active criteria in insertion order.
func (s Set) Criteria() []Criterion {
	out := make([]Criterion, 0, len(s.order))
	for _, col := range s.order {
		out = append(out, s.criteria[col])
	}
	return out
}

// Columns returns the filtered column labels in insertion order.
func (s Set) Columns() []string {
	return slices.Clone(s.order)
}

// With returns a copy of s with c upserted. Replacing keeps the column's
// original position.
func (s Set) With(c Criterion) Set {
	col := c.Column()
	next := Set{
		order:    slices.Clone(s.order),
		criteria: make(map[string]Criterion, len(s.criteria)+1),
	}
	for k, v := range s.criteria {
		next.criteria[k] = v
	}
	if _, exists := next.criteria[col]; !exists {
		next.order = append(next.order, col)
	}
	next.criteria[col] = c
	return next
}

// Without returns a copy of s with column's criterion removed.
func (s Set) Without(column string) Set {
	if _, ok := s.criteria[column]; !ok {
		return s
	}
	next := Set{
		order:    make([]string, 0, len(s.order)-1),
		criteria: make(map[string]Criterion, len(s.criteria)-1),
	}
	for _, col := range s.order {
		if col == column {
			continue
		}
		next.order = append(next.order, col)
		next.criteria[col] = s.criteria[col]
	}
	return next
}

// Match reports whether row satisfies every criterion.
// An empty Set matches every row.
func (s Set) Match(row dataset.Row) bool {
	for _, col := range s.order {
		if !Match(s.criteria[col], row[col]) {
			return false
		}
	}
	return true
}

// Equal reports whether two Sets hold the same criteria in the same order.
func (s Set) Equal(other Set) bool {
	if !slices.Equal(s.order, other.order) {
		return false
	}
	for _, col := range s.order {
		if s.criteria[col] != other.criteria[col] {
			return false
		}
	}
	return true
}

// Apply resolves column against ds and returns set with the criterion
// (kind, from, to) upserted. When the inputs are empty the column's
// criterion is removed instead.
func Apply(ds *dataset.Dataset, set Set, column string, kind Kind, from, to string) (Set, error) {
	if !slices.Contains(Kinds, kind) {
		return set, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	label, err := ds.Resolve(column)
	if err != nil {
		return set, err
	}
	c, ok := NewCriterion(label, kind, from, to)
	if !ok {
		return set.Without(label), nil
	}
	return set.With(c), nil
}
