package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raphi011/tbl/internal/dataset"
)

// RowFilter is an external row predicate applied on top of the Set.
type RowFilter func(row dataset.Row, index int) bool

// Option configures an Engine.
type Option func(*Engine)

// WithKinds sets the filter kind of each filterable column, keyed by label.
// Without it, or with a nil map, every column filters as text.
func WithKinds(kinds map[string]Kind) Option {
	return func(e *Engine) {
		if kinds == nil {
			e.kinds = nil
			return
		}
		e.kinds = make(map[string]Kind, len(kinds))
		for label, k := range kinds {
			e.kinds[label] = k
		}
	}
}

// WithRowFilter adds an external predicate that rows must also pass to be
// listed by VisibleRowIndices.
func WithRowFilter(fn RowFilter) Option {
	return func(e *Engine) {
		e.rowFilter = fn
	}
}

// WithOnRendered registers an observer called by Render with the visible
// row indices joined by "_".
func WithOnRendered(fn func(joined string)) Option {
	return func(e *Engine) {
		e.onRendered = fn
	}
}

// Engine owns a dataset and its current filter Set.
type Engine struct {
	ds         *dataset.Dataset
	set        Set
	kinds      map[string]Kind
	rowFilter  RowFilter
	onRendered func(string)
}

// NewEngine creates an Engine over ds with an empty Set.
func NewEngine(ds *dataset.Dataset, opts ...Option) *Engine {
	e := &Engine{ds: ds}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dataset returns the filtered dataset.
func (e *Engine) Dataset() *dataset.Dataset {
	return e.ds
}

// Filters returns the current Set.
func (e *Engine) Filters() Set {
	return e.set
}

// Criterion returns the active criterion of a column reference.
func (e *Engine) Criterion(column string) (Criterion, bool) {
	label, err := e.ds.Resolve(column)
	if err != nil {
		return nil, false
	}
	return e.set.Get(label)
}

// Kind returns the configured filter kind of a column reference.
// Without configured kinds every existing column is text.
func (e *Engine) Kind(column string) (Kind, bool) {
	label, err := e.ds.Resolve(column)
	if err != nil {
		return KindText, false
	}
	if e.kinds == nil {
		return KindText, true
	}
	k, ok := e.kinds[label]
	return k, ok
}

// SetFilter upserts the criterion for column, or removes it when the
// inputs are empty.
func (e *Engine) SetFilter(column string, kind Kind, from, to string) error {
	next, err := Apply(e.ds, e.set, column, kind, from, to)
	if err != nil {
		return err
	}
	e.set = next
	return nil
}

// ClearFilters removes every criterion.
func (e *Engine) ClearFilters() {
	e.set = Set{}
}

// IsRowVisible reports whether row satisfies every active criterion.
func (e *Engine) IsRowVisible(row dataset.Row) bool {
	return e.set.Match(row)
}

// VisibleRowIndices returns, in dataset order, the indices of rows that
// satisfy the Set and the external row filter.
func (e *Engine) VisibleRowIndices() []int {
	out := make([]int, 0, e.ds.Len())
	for i, row := range e.ds.Rows {
		if !e.set.Match(row) {
			continue
		}
		if e.rowFilter != nil && !e.rowFilter(row, i) {
			continue
		}
		out = append(out, i)
	}
	return out
}

// Render computes the visible rows and notifies the OnRendered observer.
func (e *Engine) Render() []int {
	rows := e.VisibleRowIndices()
	if e.onRendered != nil {
		e.onRendered(JoinIndices(rows))
	}
	return rows
}

// HandleChange applies one filter-input change event.
//
// subIndex "0" writes the from bound and "1" the to bound; the other bound
// is kept from the current criterion. valid is ignored: an input the
// widget marks invalid still filters.
func (e *Engine) HandleChange(value string, valid bool, column, subIndex string) error {
	label, err := e.ds.Resolve(column)
	if err != nil {
		return err
	}
	kind, ok := e.Kind(label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFilterable, label)
	}

	var from, to string
	if cur, ok := e.set.Get(label); ok && cur.Kind() == kind {
		from, to = cur.Bounds()
	}
	switch subIndex {
	case "0":
		from = value
	case "1":
		to = value
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSubIndex, subIndex)
	}
	return e.SetFilter(label, kind, from, to)
}

// HandleSelect applies a categorical picker event. optionIndex -1 clears
// the column's criterion; an empty value picks Options()[optionIndex].
func (e *Engine) HandleSelect(value string, optionIndex int, column string) error {
	label, err := e.ds.Resolve(column)
	if err != nil {
		return err
	}
	if optionIndex < 0 {
		e.set = e.set.Without(label)
		return nil
	}
	if value == "" {
		opts := e.ds.Distinct(label)
		if optionIndex >= len(opts) {
			return fmt.Errorf("%w: option %d of %q", ErrInvalidSubIndex, optionIndex, label)
		}
		value = opts[optionIndex]
	}
	return e.SetFilter(label, KindSelect, value, "")
}

// Options returns the picker options of a column: its distinct string values.
func (e *Engine) Options(column string) ([]string, error) {
	label, err := e.ds.Resolve(column)
	if err != nil {
		return nil, err
	}
	return e.ds.Distinct(label), nil
}

// JoinIndices joins row indices with "_".
func JoinIndices(rows []int) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, "_")
}
