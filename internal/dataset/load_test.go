package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := "Name,Price\nApple,\"$3,000\"\nBanana\n"
	ds, err := ReadCSV(strings.NewReader(input), "fruit")
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if want := []string{"Name", "Price"}; !reflect.DeepEqual(ds.Labels, want) {
		t.Errorf("Labels = %v, want %v", ds.Labels, want)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}
	if got, ok := ds.Rows[0]["Price"].AsString(); !ok || got != "$3,000" {
		t.Errorf("Rows[0][Price] = %q, %v, want $3,000 string", got, ok)
	}
	// short record padded with empty strings
	if got, ok := ds.Rows[1]["Price"].AsString(); !ok || got != "" {
		t.Errorf("Rows[1][Price] = %q, %v, want empty string", got, ok)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	t.Parallel()

	ds, err := ReadCSV(strings.NewReader(""), "empty")
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if ds.Len() != 0 || len(ds.Labels) != 0 {
		t.Errorf("got %d rows / %d labels, want empty", ds.Len(), len(ds.Labels))
	}
}

func TestReadJSON(t *testing.T) {
	t.Parallel()

	t.Run("object form", func(t *testing.T) {
		t.Parallel()
		input := `{
  "title": "stock",
  "labels": ["Name", "Qty", "Active"],
  "contents": [
    {"Name": "Widget", "Qty": 4, "Active": true},
    {"Name": "Gadget", "Qty": null, "Active": false}
  ]
}`
		ds, err := ReadJSON(strings.NewReader(input), "fallback")
		if err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		if ds.Title != "stock" {
			t.Errorf("Title = %q, want stock", ds.Title)
		}
		if n, ok := ds.Rows[0]["Qty"].AsNumber(); !ok || n != 4 {
			t.Errorf("Rows[0][Qty] = %v, %v, want 4", n, ok)
		}
		if !ds.Rows[1]["Qty"].IsNull() {
			t.Errorf("Rows[1][Qty] = %v, want null", ds.Rows[1]["Qty"])
		}
		if b, ok := ds.Rows[1]["Active"].AsBool(); !ok || b {
			t.Errorf("Rows[1][Active] = %v, %v, want false", b, ok)
		}
	})

	t.Run("bare array collects sorted labels", func(t *testing.T) {
		t.Parallel()
		input := `[{"b": "1", "a": "2"}, {"c": 3}]`
		ds, err := ReadJSON(strings.NewReader(input), "rows")
		if err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		if want := []string{"a", "b", "c"}; !reflect.DeepEqual(ds.Labels, want) {
			t.Errorf("Labels = %v, want %v", ds.Labels, want)
		}
		if ds.Title != "rows" {
			t.Errorf("Title = %q, want rows", ds.Title)
		}
		if !ds.Rows[0]["c"].IsNull() {
			t.Errorf("Rows[0][c] = %v, want null", ds.Rows[0]["c"])
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		if _, err := ReadJSON(strings.NewReader("{"), "x"); err == nil {
			t.Error("ReadJSON() expected error")
		}
	})
}

func TestReadTOML(t *testing.T) {
	t.Parallel()

	input := `title = "people"
labels = ["Name", "Age", "Joined"]

[[contents]]
Name = "Ada"
Age = 36
Joined = 2020-06-15

[[contents]]
Name = "Linus"
Age = 54
`
	ds, err := ReadTOML(strings.NewReader(input), "fallback")
	if err != nil {
		t.Fatalf("ReadTOML() error = %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}
	if n, ok := ds.Rows[1]["Age"].AsNumber(); !ok || n != 54 {
		t.Errorf("Rows[1][Age] = %v, %v, want 54", n, ok)
	}
	if s, ok := ds.Rows[0]["Joined"].AsString(); !ok || s != "2020-06-15" {
		t.Errorf("Rows[0][Joined] = %q, %v, want 2020-06-15", s, ok)
	}
	if !ds.Rows[1]["Joined"].IsNull() {
		t.Errorf("Rows[1][Joined] = %v, want null", ds.Rows[1]["Joined"])
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("dispatches on extension", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "orders.csv")
		if err := os.WriteFile(path, []byte("ID,Total\n1,¥150\n"), 0644); err != nil {
			t.Fatal(err)
		}
		ds, err := Load(context.Background(), path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if ds.Title != "orders" {
			t.Errorf("Title = %q, want orders", ds.Title)
		}
		if ds.Len() != 1 {
			t.Errorf("Len() = %d, want 1", ds.Len())
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "data.xlsx")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(context.Background(), path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv")); err == nil {
			t.Error("Load() expected error for missing file")
		}
	})
}
