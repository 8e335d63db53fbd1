package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// tableFormat is the object form of JSON and TOML datasets.
type tableFormat struct {
	Title    string           `json:"title" toml:"title"`
	Labels   []string         `json:"labels" toml:"labels"`
	Contents []map[string]any `json:"contents" toml:"contents"`
}

// Load reads a dataset from path, choosing the decoder by file extension.
// The file name (without extension) is used as title when the file has none.
func Load(ctx context.Context, path string) (*Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".parquet" {
		return LoadParquet(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch ext {
	case ".csv":
		return ReadCSV(f, title)
	case ".json":
		return ReadJSON(f, title)
	case ".toml":
		return ReadTOML(f, title)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV reads a CSV table whose first record is the header.
// Every cell loads as a string value.
func ReadCSV(r io.Reader, title string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return New(title, nil, nil)
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+1, err)
		}
		row := make(Row, len(labels))
		for i, label := range labels {
			if i < len(record) {
				row[label] = String(record[i])
			} else {
				row[label] = String("")
			}
		}
		rows = append(rows, row)
	}

	return New(title, labels, rows)
}

// ReadJSON reads either the object form {"title","labels","contents"}
// or a bare array of row objects.
func ReadJSON(r io.Reader, title string) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	var tf tableFormat
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := decodeJSON(trimmed, &tf.Contents); err != nil {
			return nil, fmt.Errorf("parse json rows: %w", err)
		}
	} else if err := decodeJSON(trimmed, &tf); err != nil {
		return nil, fmt.Errorf("parse json table: %w", err)
	}

	return fromTableFormat(tf, title)
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// ReadTOML reads the object form with [[contents]] tables.
func ReadTOML(r io.Reader, title string) (*Dataset, error) {
	var tf tableFormat
	if _, err := toml.NewDecoder(r).Decode(&tf); err != nil {
		return nil, fmt.Errorf("parse toml table: %w", err)
	}
	return fromTableFormat(tf, title)
}

func fromTableFormat(tf tableFormat, fallbackTitle string) (*Dataset, error) {
	title := tf.Title
	if title == "" {
		title = fallbackTitle
	}

	labels := tf.Labels
	if len(labels) == 0 {
		labels = collectLabels(tf.Contents)
	}

	rows := make([]Row, 0, len(tf.Contents))
	for _, content := range tf.Contents {
		row := make(Row, len(labels))
		for _, label := range labels {
			row[label] = FromAny(content[label])
		}
		rows = append(rows, row)
	}

	return New(title, labels, rows)
}

// collectLabels gathers the union of keys across rows, sorted.
func collectLabels(contents []map[string]any) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, content := range contents {
		for key := range content {
			if !seen[key] {
				seen[key] = true
				labels = append(labels, key)
			}
		}
	}
	sort.Strings(labels)
	return labels
}
