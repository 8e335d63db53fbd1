package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"/data/orders.csv", "/data/orders.tbl.toml"},
		{"stock.parquet", "stock.tbl.toml"},
		{"noext", "noext.tbl.toml"},
	}
	for _, tt := range tests {
		if got := LocalPath(tt.in); got != tt.want {
			t.Errorf("LocalPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadLocal_Missing(t *testing.T) {
	t.Parallel()

	local, err := LoadLocal(filepath.Join(t.TempDir(), "orders.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local != nil {
		t.Errorf("expected nil local config, got %+v", local)
	}
}

func TestLoadLocal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "orders.tbl.toml"), `
[display]
max_col_width = 0

[columns]
Total = "JPY"

[view]
sort = "Total:desc"
`)

	local, err := LoadLocal(filepath.Join(dir, "orders.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Display.MaxColWidth == nil || *local.Display.MaxColWidth != 0 {
		t.Errorf("max_col_width = %v, want explicit 0", local.Display.MaxColWidth)
	}
	if local.Display.Null != nil {
		t.Errorf("null = %v, want unset", local.Display.Null)
	}
	if local.Columns["Total"] != "JPY" || local.View.Sort != "Total:desc" {
		t.Errorf("unexpected local config: %+v", local)
	}
}

func TestLoadLocal_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative width", "[display]\nmax_col_width = -3\n", "max_col_width"},
		{"unknown kind", "[columns]\nTotal = \"GBP\"\n", "columns.Total"},
		{"bad rule", "[[highlight]]\ncolumn = \"A\"\n", "highlight[0]"},
		{"bad filter", "[view]\nfilters = [\"Total:money:1\"]\n", "view.filters[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "d.tbl.toml"), tt.content)

			_, err := LoadLocal(filepath.Join(dir, "d.json"))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) || !strings.Contains(err.Error(), "d.tbl.toml") {
				t.Errorf("error %q should mention %q and the file", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLocal(t *testing.T) {
	t.Parallel()

	dataset := filepath.Join(t.TempDir(), "orders.csv")
	local := &LocalConfig{Columns: map[string]string{"Total": "JPY", "Status": "select"}}

	path, err := SaveLocal(dataset, local, false)
	if err != nil {
		t.Fatalf("SaveLocal() error = %v", err)
	}
	if path != LocalPath(dataset) {
		t.Errorf("SaveLocal() = %q, want %q", path, LocalPath(dataset))
	}

	loaded, err := LoadLocal(dataset)
	if err != nil {
		t.Fatalf("LoadLocal() error = %v", err)
	}
	if loaded.Columns["Total"] != "JPY" || loaded.Columns["Status"] != "select" {
		t.Errorf("columns = %v", loaded.Columns)
	}
	if loaded.Display.MaxColWidth != nil {
		t.Errorf("unset display written: %v", *loaded.Display.MaxColWidth)
	}

	if _, err := SaveLocal(dataset, local, false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected already exists error, got %v", err)
	}
	if _, err := SaveLocal(dataset, local, true); err != nil {
		t.Errorf("SaveLocal(force) error = %v", err)
	}
	if _, err := SaveLocal(dataset, &LocalConfig{Columns: map[string]string{"Total": "GBP"}}, true); err == nil {
		t.Error("expected error for unknown kind")
	}
}
