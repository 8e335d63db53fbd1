// Package config handles loading and validation of tbl configuration.
//
// Configuration is read from ~/.config/tbl/config.toml. The TBL_CONFIG
// environment variable or the --config flag point at another file.
//
// # Configuration Sources (highest priority first)
//
//   - Dataset sidecar file: orders.tbl.toml next to orders.csv
//   - Global config file
//   - Default values
//
// # Key Settings
//
//   - [theme]: name, mode (auto, light, dark), color overrides, nerdfont
//   - [display]: max_col_width truncates static output, null is the text of
//     absent cells
//   - [columns]: filter kind per column label (text, dec, JPY, USD, date,
//     select); columns without a kind are not filterable in the browser
//   - [labels]: header text per column label
//   - [[highlight]]: row highlight rules, first match wins
//   - [view]: default sort, filter expressions and hidden columns
//
// # Highlight Rules
//
//	[[highlight]]
//	column = "Status"
//	contains = "late"
//	level = "warning"   # info, warning, error or blind
//
// # Sidecar Files
//
// A sidecar overrides the global file for one dataset. Columns and labels
// merge by key, highlight rules are tried before the global ones, and view
// settings replace the global ones when set.
package config
