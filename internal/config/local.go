package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/tbl/internal/storage"
)

// LocalConfigSuffix replaces a dataset's extension to name its sidecar file.
const LocalConfigSuffix = ".tbl.toml"

// LocalConfig holds per-dataset configuration overrides from a sidecar file.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Display   LocalDisplay      `toml:"display,omitempty"`
	Columns   map[string]string `toml:"columns,omitempty"`   // merged by label
	Labels    map[string]string `toml:"labels,omitempty"`    // merged by label
	Highlight []HighlightRule   `toml:"highlight,omitempty"` // tried before global rules
	View      ViewConfig        `toml:"view,omitempty"`
}

// LocalDisplay holds local display overrides
type LocalDisplay struct {
	MaxColWidth *int    `toml:"max_col_width,omitempty"`
	Null        *string `toml:"null,omitempty"`
}

// LocalPath returns the sidecar path of a dataset file.
func LocalPath(datasetPath string) string {
	return strings.TrimSuffix(datasetPath, filepath.Ext(datasetPath)) + LocalConfigSuffix
}

// LoadLocal reads the sidecar config of the given dataset file.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(datasetPath string) (*LocalConfig, error) {
	configFile := LocalPath(datasetPath)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if local.Display.MaxColWidth != nil && *local.Display.MaxColWidth < 0 {
		return nil, fmt.Errorf("invalid display.max_col_width %d in %s: must be 0 or positive", *local.Display.MaxColWidth, configFile)
	}
	if err := validateColumns(local.Columns); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validateHighlight(local.Highlight); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validateView(local.View); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}

	return &local, nil
}

const localHeader = `# tbl dataset config, merged over the global config.
# Filter kinds: text, dec, JPY, USD, date, select

`

// SaveLocal writes local as the sidecar of the given dataset file and
// returns the sidecar path. An existing sidecar is kept unless force is set.
func SaveLocal(datasetPath string, local *LocalConfig, force bool) (string, error) {
	configFile := LocalPath(datasetPath)
	if !force {
		if _, err := os.Stat(configFile); err == nil {
			return "", errors.New("config file already exists: " + configFile)
		}
	}
	if err := validateColumns(local.Columns); err != nil {
		return "", err
	}
	if err := storage.SaveTOML(configFile, localHeader, local); err != nil {
		return "", err
	}
	return configFile, nil
}
