package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raphi011/tbl/internal/dataset"
	"github.com/raphi011/tbl/internal/filter"
)

// SortDirection specifies the direction of sorting.
type SortDirection int

const (
	// SortNone keeps dataset order.
	SortNone SortDirection = iota
	// SortAscending sorts smallest first.
	SortAscending
	// SortDescending sorts largest first.
	SortDescending
)

// String returns the string representation of a SortDirection.
func (sd SortDirection) String() string {
	switch sd {
	case SortNone:
		return "none"
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return fmt.Sprintf("unknown(%d)", int(sd))
	}
}

// Next cycles none, ascending, descending and back to none.
func (sd SortDirection) Next() SortDirection {
	switch sd {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// SortState is the current sorting configuration.
type SortState struct {
	// Column is the label of the sorted column, empty if unsorted.
	Column    string
	Direction SortDirection
}

// IsSorted reports whether the state represents an active sort.
func (s SortState) IsSorted() bool {
	return s.Column != "" && s.Direction != SortNone
}

// ParseSort parses COLUMN[:asc|:desc]. The direction defaults to ascending.
func ParseSort(s string) (SortState, error) {
	if s == "" {
		return SortState{}, nil
	}
	col, dir, hasDir := strings.Cut(s, ":")
	if col == "" {
		return SortState{}, fmt.Errorf("invalid sort %q: missing column", s)
	}
	if !hasDir {
		return SortState{Column: col, Direction: SortAscending}, nil
	}
	switch strings.ToLower(dir) {
	case "asc", "ascending":
		return SortState{Column: col, Direction: SortAscending}, nil
	case "desc", "descending":
		return SortState{Column: col, Direction: SortDescending}, nil
	case "none":
		return SortState{}, nil
	}
	return SortState{}, fmt.Errorf("invalid sort direction %q (want asc or desc)", dir)
}

// sortKey ranks a cell for sorting: numbers, then dates, then other text.
// Null and empty cells rank last in either direction.
type sortKey struct {
	rank int
	num  float64
	text string
}

const (
	rankNumber = iota
	rankDate
	rankText
	rankEmpty
)

func keyOf(v dataset.Value) sortKey {
	if n, ok := v.AsNumber(); ok {
		return sortKey{rank: rankNumber, num: n}
	}
	if v.IsNull() {
		return sortKey{rank: rankEmpty}
	}
	s := v.String()
	if s == "" {
		return sortKey{rank: rankEmpty}
	}
	if n, ok := filter.ParseNumber(s); ok {
		return sortKey{rank: rankNumber, num: n}
	}
	if t, ok := filter.ParseDate(s); ok {
		return sortKey{rank: rankDate, num: float64(t.Unix())}
	}
	return sortKey{rank: rankText, text: strings.ToLower(s)}
}

func compareKeys(a, b sortKey) int {
	if a.rank != b.rank {
		return a.rank - b.rank
	}
	switch {
	case a.rank == rankText:
		return strings.Compare(a.text, b.text)
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	}
	return 0
}

// sortIndices stably sorts row indices of ds by the state's column.
func sortIndices(ds *dataset.Dataset, rows []int, state SortState) {
	if !state.IsSorted() {
		return
	}
	keys := make(map[int]sortKey, len(rows))
	for _, i := range rows {
		keys[i] = keyOf(ds.Rows[i][state.Column])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := keys[rows[i]], keys[rows[j]]
		if a.rank == rankEmpty || b.rank == rankEmpty {
			return a.rank < b.rank
		}
		c := compareKeys(a, b)
		if state.Direction == SortDescending {
			return c > 0
		}
		return c < 0
	})
}
