package config

import (
	"reflect"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestMergeLocal_Nil(t *testing.T) {
	t.Parallel()

	global := Default()
	if got := MergeLocal(&global, nil); got != &global {
		t.Error("MergeLocal(nil) should return global unchanged")
	}
}

func TestMergeLocal(t *testing.T) {
	t.Parallel()

	global := Config{
		Theme:   ThemeConfig{Name: "nord"},
		Display: DisplayConfig{MaxColWidth: 40, Null: "-"},
		Columns: map[string]string{"Price": "USD", "Date": "date"},
		Labels:  map[string]string{"Price": "Price ($)"},
		Highlight: []HighlightRule{
			{Column: "Status", Contains: "late", Level: "warning"},
		},
		View: ViewConfig{Sort: "Date", Filters: []string{"Price:USD:1.."}, Hidden: []string{"ID"}},
	}
	local := &LocalConfig{
		Display: LocalDisplay{MaxColWidth: ptr(0)},
		Columns: map[string]string{"Price": "JPY", "Status": "select"},
		Highlight: []HighlightRule{
			{Column: "Status", Equals: "late", Level: "error"},
		},
		View: ViewConfig{Filters: []string{"Status:select:open"}, Hidden: []string{"Notes", "ID"}},
	}

	merged := MergeLocal(&global, local)

	if merged.Theme.Name != "nord" {
		t.Errorf("theme should be inherited, got %q", merged.Theme.Name)
	}
	if merged.Display.MaxColWidth != 0 || merged.Display.Null != "-" {
		t.Errorf("display = %+v, want width 0 and inherited null", merged.Display)
	}
	if want := map[string]string{"Price": "JPY", "Date": "date", "Status": "select"}; !reflect.DeepEqual(merged.Columns, want) {
		t.Errorf("columns = %v, want %v", merged.Columns, want)
	}
	if merged.Labels["Price"] != "Price ($)" {
		t.Errorf("labels should be inherited, got %v", merged.Labels)
	}
	if len(merged.Highlight) != 2 || merged.Highlight[0].Level != "error" {
		t.Errorf("local rules should come first, got %+v", merged.Highlight)
	}
	if merged.View.Sort != "Date" {
		t.Errorf("view.sort = %q, want inherited Date", merged.View.Sort)
	}
	if want := []string{"Status:select:open"}; !reflect.DeepEqual(merged.View.Filters, want) {
		t.Errorf("view.filters = %v, want %v", merged.View.Filters, want)
	}
	if want := []string{"ID", "Notes"}; !reflect.DeepEqual(merged.View.Hidden, want) {
		t.Errorf("view.hidden = %v, want %v", merged.View.Hidden, want)
	}

	// global must not be mutated
	if global.Columns["Price"] != "USD" || len(global.Highlight) != 1 || global.Display.MaxColWidth != 40 {
		t.Errorf("global mutated: %+v", global)
	}
}

func TestAppendUnique(t *testing.T) {
	t.Parallel()

	base := []string{"a", "b"}
	got := appendUnique(base, []string{"b", "c", "c"})
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("appendUnique() = %v, want %v", got, want)
	}
	if len(base) != 2 {
		t.Error("appendUnique mutated base")
	}
}
