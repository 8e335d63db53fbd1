// Package dataset holds the in-memory, column-labeled tables that tbl
// filters, sorts and renders.
//
// A [Dataset] is an ordered list of labels plus an ordered list of rows.
// Each [Row] maps a label to a scalar [Value] (string, number, boolean or
// null). Row order is the display order and is never changed by this
// package; sorting happens in the table view.
//
// # Column References
//
// Filter widgets identify columns by their index rendered as a string,
// command line flags by label. [Dataset.Resolve] accepts both: an exact
// label match wins, otherwise the reference is parsed as a decimal index.
//
// # Loading
//
// [Load] reads CSV, JSON, TOML and Parquet files. CSV cells always load as
// strings; the typed formats keep numbers and booleans.
package dataset
