package static

import (
	"strings"
	"testing"

	"github.com/raphi011/tbl/internal/table"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	lines := []table.Line{
		{Index: 0, Cells: []string{"Apple", "$2.00"}},
		{Index: 2, Cells: []string{"Cherry", "$9.50"}, Highlight: table.HighlightWarning},
	}

	out := RenderTable([]string{"Name", "Price"}, lines, 0)

	for _, want := range []string{"Name", "Price", "Apple", "$2.00", "Cherry", "$9.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestRenderTableEmpty(t *testing.T) {
	t.Parallel()

	if out := RenderTable([]string{"Name"}, nil, 0); out != "" {
		t.Errorf("expected empty output for no lines, got %q", out)
	}
}

func TestRenderTableTruncates(t *testing.T) {
	t.Parallel()

	lines := []table.Line{{Cells: []string{"a very long product name"}}}

	out := RenderTable([]string{"Name"}, lines, 8)

	if strings.Contains(out, "a very long product name") {
		t.Errorf("expected cell to be truncated:\n%s", out)
	}
	if !strings.Contains(out, "a very "+Ellipsis) {
		t.Errorf("expected truncated cell with ellipsis:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"unlimited", "abcdefgh", 0, "abcdefgh"},
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"truncated", "abcdefgh", 5, "abcd" + Ellipsis},
		{"wide runes", "¥12,345", 4, "¥12" + Ellipsis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderTSV(t *testing.T) {
	t.Parallel()

	lines := []table.Line{
		{Cells: []string{"Apple", "2"}},
		{Cells: []string{"Banana", ""}},
	}

	got := RenderTSV([]string{"Name", "Qty"}, lines)
	want := "Name\tQty\nApple\t2\nBanana\t\n"
	if got != want {
		t.Errorf("RenderTSV() = %q, want %q", got, want)
	}
}
