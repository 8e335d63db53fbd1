package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/raphi011/tbl/internal/filter"
	"github.com/raphi011/tbl/internal/table"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

func validateColumns(columns map[string]string) error {
	for label, kind := range columns {
		if _, err := filter.ParseKind(kind); err != nil {
			return fmt.Errorf("invalid columns.%s: %w", label, err)
		}
	}
	return nil
}

func validateHighlight(rules []HighlightRule) error {
	for i, r := range rules {
		if r.Column == "" {
			return fmt.Errorf("invalid highlight[%d]: column is required", i)
		}
		if r.Contains == "" && r.Equals == "" {
			return fmt.Errorf("invalid highlight[%d]: one of contains or equals is required", i)
		}
		if _, err := table.ParseHighlight(r.Level); err != nil {
			return fmt.Errorf("invalid highlight[%d]: %w", i, err)
		}
	}
	return nil
}

func validateView(v ViewConfig) error {
	if _, err := table.ParseSort(v.Sort); err != nil {
		return fmt.Errorf("invalid view.sort: %w", err)
	}
	for i, expr := range v.Filters {
		if _, _, _, _, err := filter.ParseSpec(expr); err != nil {
			return fmt.Errorf("invalid view.filters[%d]: %w", i, err)
		}
	}
	return nil
}
