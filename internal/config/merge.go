package config

import (
	"maps"
	"slices"
)

// MergeLocal merges a local per-dataset config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	// Theme is global-only and inherited by the shallow copy.
	merged := *global

	if local.Display.MaxColWidth != nil {
		merged.Display.MaxColWidth = *local.Display.MaxColWidth
	}
	if local.Display.Null != nil {
		merged.Display.Null = *local.Display.Null
	}

	merged.Columns = mergeMap(global.Columns, local.Columns)
	merged.Labels = mergeMap(global.Labels, local.Labels)

	// Local rules first: the first matching rule wins
	if len(local.Highlight) > 0 {
		merged.Highlight = slices.Concat(local.Highlight, global.Highlight)
	}

	if local.View.Sort != "" {
		merged.View.Sort = local.View.Sort
	}
	if len(local.View.Filters) > 0 {
		merged.View.Filters = slices.Clone(local.View.Filters)
	}
	if len(local.View.Hidden) > 0 {
		merged.View.Hidden = appendUnique(global.View.Hidden, local.View.Hidden)
	}

	return &merged
}

// mergeMap copies global and overlays local. Never mutates either.
func mergeMap(global, local map[string]string) map[string]string {
	merged := make(map[string]string, len(global)+len(local))
	maps.Copy(merged, global)
	maps.Copy(merged, local)
	return merged
}

// appendUnique appends items from extra to base, skipping duplicates.
// Returns a new slice (never mutates base).
func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}

	result := make([]string, len(base))
	copy(result, base)

	for _, v := range extra {
		if !seen[v] {
			result = append(result, v)
			seen[v] = true
		}
	}

	return result
}
