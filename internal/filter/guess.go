package filter

import (
	"strings"

	"github.com/raphi011/tbl/internal/dataset"
)

// maxSelectOptions bounds the distinct values a guessed select column has.
const maxSelectOptions = 12

// GuessKind infers a filter kind from a column's non-empty cells.
//
// A column of dates is date, a column of numbers is JPY or USD when any
// cell carries the currency sign and dec otherwise. A string column that
// repeats a few values is select; anything else is text.
func GuessKind(ds *dataset.Dataset, label string) Kind {
	var (
		cells          int
		numbers, dates int
		yen, dollar    bool
	)
	distinct := make(map[string]struct{})
	for _, row := range ds.Rows {
		v := row[label]
		if v.IsNull() {
			continue
		}
		if _, ok := v.AsNumber(); ok {
			cells++
			numbers++
			continue
		}
		s, ok := v.AsString()
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		cells++
		distinct[s] = struct{}{}
		if _, ok := ParseDate(s); ok {
			dates++
		} else if _, ok := ParseNumber(s); ok {
			numbers++
			yen = yen || strings.ContainsAny(s, "¥￥")
			dollar = dollar || strings.Contains(s, "$")
		}
	}

	switch {
	case cells == 0:
		return KindText
	case dates == cells:
		return KindDate
	case numbers == cells && yen:
		return KindJPY
	case numbers == cells && dollar:
		return KindUSD
	case numbers == cells:
		return KindDecimal
	case len(distinct) <= maxSelectOptions && len(distinct)*2 <= cells:
		return KindSelect
	default:
		return KindText
	}
}
