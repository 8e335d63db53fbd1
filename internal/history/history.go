// Package history tracks recently browsed datasets.
// This enables `tbl browse` with no arguments to reopen the last dataset
// and `tbl recent` to list the others.
package history

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/raphi011/tbl/internal/storage"
)

// maxEntries caps the number of remembered datasets
const maxEntries = 50

// Entry is one remembered dataset
type Entry struct {
	Path        string    `json:"path"`
	Title       string    `json:"title"`
	AccessCount int       `json:"access_count"`
	LastAccess  time.Time `json:"last_access"`
}

// History stores the recently browsed datasets
type History struct {
	Entries []Entry `json:"entries"`
}

// DefaultPath returns the path to the history file
func DefaultPath() string {
	dir, err := storage.Dir()
	if err != nil {
		dir = filepath.Join(os.TempDir(), "tbl")
	}
	return filepath.Join(dir, "history.json")
}

// Load reads the history from file. A missing file yields an empty history.
func Load(file string) (*History, error) {
	var h History
	if err := storage.LoadJSON(file, &h); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &History{}, nil
		}
		return nil, err
	}
	return &h, nil
}

// Save writes the history to file atomically
func (h *History) Save(file string) error {
	return storage.SaveJSON(file, h)
}

// FindByPath returns the entry for path, or nil
func (h *History) FindByPath(path string) *Entry {
	for i := range h.Entries {
		if h.Entries[i].Path == path {
			return &h.Entries[i]
		}
	}
	return nil
}

// RemoveByPath drops the entry for path and reports whether it existed
func (h *History) RemoveByPath(path string) bool {
	n := len(h.Entries)
	h.Entries = slices.DeleteFunc(h.Entries, func(e Entry) bool { return e.Path == path })
	return len(h.Entries) != n
}

// RemoveStale drops entries whose file no longer exists and returns how
// many were removed
func (h *History) RemoveStale() int {
	n := len(h.Entries)
	h.Entries = slices.DeleteFunc(h.Entries, func(e Entry) bool {
		_, err := os.Stat(e.Path)
		return err != nil
	})
	return n - len(h.Entries)
}

// Recent returns the entries, most recently accessed first
func (h *History) Recent() []Entry {
	out := slices.Clone(h.Entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return b.LastAccess.Compare(a.LastAccess)
	})
	return out
}

// Update loads the history, applies fn and saves the result while holding
// the history lock, so concurrent tbl processes do not lose entries.
func Update(file string, fn func(h *History) error) error {
	return storage.WithLock(file, func() error {
		h, err := Load(file)
		if err != nil {
			// Corrupted - start fresh
			h = &History{}
		}
		if err := fn(h); err != nil {
			return err
		}
		return h.Save(file)
	})
}

// RecordAccess records a visit of the dataset at path.
// The oldest entry is evicted once the history is full.
func RecordAccess(path, title, file string) error {
	return Update(file, func(h *History) error {
		now := time.Now()
		if e := h.FindByPath(path); e != nil {
			e.AccessCount++
			e.LastAccess = now
			e.Title = title
			return nil
		}

		h.Entries = append(h.Entries, Entry{Path: path, Title: title, AccessCount: 1, LastAccess: now})
		if len(h.Entries) > maxEntries {
			h.Entries = h.Recent()[:maxEntries]
		}
		return nil
	})
}

// GetMostRecent returns the most recently accessed dataset path.
// Returns empty string if no history exists
func GetMostRecent(file string) (string, error) {
	h, err := Load(file)
	if err != nil {
		return "", err
	}
	recent := h.Recent()
	if len(recent) == 0 {
		return "", nil
	}
	return recent[0].Path, nil
}
