// Package filter decides which rows of a dataset are visible under a set
// of per-column filter criteria.
//
// A [Criterion] is one column's condition. It is a closed set of variants:
//
//   - [Text]: the cell is a string containing Value (case-sensitive)
//   - [Categorical]: same comparison, fed by a picker of distinct values
//   - [Numeric]: the cell parses as a number inside [From, To]; currency
//     symbols (¥, $) and grouping commas are stripped first
//   - [Date]: the cell parses as a date inside [From, To]
//
// A [Set] holds at most one criterion per column and is an immutable value:
// [Apply] returns a new Set. A row is visible when it satisfies every
// criterion in the Set.
//
// # Fail-Closed Matching
//
// A cell that cannot be compared under its column's criterion (a number
// under a text filter, "abc" under a numeric filter, an unparsable date)
// hides the row. Matching never returns an error. An empty or unparsable
// bound places no constraint on its side of a range; reversed bounds are
// evaluated literally and may match nothing.
//
// # Engine
//
// [Engine] owns a dataset and the current Set and speaks the filter-widget
// protocol: [Engine.HandleChange] receives (value, valid, column, subIndex)
// from text/number/date inputs, [Engine.HandleSelect] receives picks from
// categorical dropdowns. The valid flag is ignored; validity is the input
// widget's display concern. [Engine.Render] recomputes the visible rows and
// notifies the OnRendered observer with the indices joined by "_".
//
// The Engine is not safe for concurrent use. Callers mutate it from a
// single event loop and read the visible rows after each mutation.
package filter
