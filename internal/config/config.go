package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/tbl/internal/filter"
	"github.com/raphi011/tbl/internal/history"
	"github.com/raphi011/tbl/internal/storage"
	"github.com/raphi011/tbl/internal/table"
)

// ThemeConfig selects and customizes the color theme
type ThemeConfig struct {
	Name     string `toml:"name"` // preset family
	Mode     string `toml:"mode"` // "auto", "light" or "dark"
	Primary  string `toml:"primary,omitempty"`
	Accent   string `toml:"accent,omitempty"`
	Success  string `toml:"success,omitempty"`
	Error    string `toml:"error,omitempty"`
	Muted    string `toml:"muted,omitempty"`
	Normal   string `toml:"normal,omitempty"`
	Info     string `toml:"info,omitempty"`
	Warning  string `toml:"warning,omitempty"`
	Nerdfont bool   `toml:"nerdfont,omitempty"`
}

// DisplayConfig holds cell rendering settings
type DisplayConfig struct {
	MaxColWidth int    `toml:"max_col_width"`  // 0 = unlimited
	Null        string `toml:"null,omitempty"` // text shown for absent cells
}

// HighlightRule colors rows whose Column cell contains or equals a value
type HighlightRule struct {
	Column   string `toml:"column"`
	Contains string `toml:"contains,omitempty"`
	Equals   string `toml:"equals,omitempty"`
	Level    string `toml:"level"`
}

// ViewConfig holds the initial view of a dataset
type ViewConfig struct {
	Sort    string   `toml:"sort,omitempty"`    // COLUMN[:asc|:desc]
	Filters []string `toml:"filters,omitempty"` // COLUMN:KIND:VALUE expressions
	Hidden  []string `toml:"hidden,omitempty"`  // column labels not shown
}

// Config holds the tbl configuration
type Config struct {
	Theme     ThemeConfig       `toml:"theme"`
	Display   DisplayConfig     `toml:"display"`
	Columns   map[string]string `toml:"columns,omitempty"` // label -> filter kind
	Labels    map[string]string `toml:"labels,omitempty"`  // label -> header text
	Highlight []HighlightRule   `toml:"highlight,omitempty"`
	View      ViewConfig        `toml:"view"`

	HistoryPath string `toml:"history_path,omitempty"` // default ~/.config/tbl/history.json
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Theme:   ThemeConfig{Name: "default", Mode: "auto"},
		Columns: map[string]string{},
		Labels:  map[string]string{},
	}
}

// Kinds returns the configured filter kind per column label.
// Returns nil when no columns are configured.
func (c *Config) Kinds() map[string]filter.Kind {
	if len(c.Columns) == 0 {
		return nil
	}
	kinds := make(map[string]filter.Kind, len(c.Columns))
	for label, name := range c.Columns {
		// validated on load
		k, err := filter.ParseKind(name)
		if err != nil {
			continue
		}
		kinds[label] = k
	}
	return kinds
}

// Rules returns the highlight rules in match order.
func (c *Config) Rules() table.Rules {
	rules := make(table.Rules, 0, len(c.Highlight))
	for _, r := range c.Highlight {
		level, err := table.ParseHighlight(r.Level)
		if err != nil {
			continue
		}
		rules = append(rules, table.Rule{
			Column:   r.Column,
			Contains: r.Contains,
			Equals:   r.Equals,
			Level:    level,
		})
	}
	return rules
}

// GetHistoryPath returns the history file path, falling back to the
// default under ~/.config/tbl/
func (c *Config) GetHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	return history.DefaultPath()
}

// Validate checks all enum and expression fields.
func (c *Config) Validate() error {
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	if c.Display.MaxColWidth < 0 {
		return fmt.Errorf("invalid display.max_col_width %d: must be 0 or positive", c.Display.MaxColWidth)
	}
	if err := validateColumns(c.Columns); err != nil {
		return err
	}
	if err := validateHighlight(c.Highlight); err != nil {
		return err
	}
	return validateView(c.View)
}

// EnvConfigPath is the environment variable overriding the config file path
const EnvConfigPath = "TBL_CONFIG"

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the config file path: $TBL_CONFIG if set, otherwise
// ~/.config/tbl/config.toml
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tbl", "config.toml"), nil
}

// Load reads config from Path()
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path. A missing file yields Default().
func LoadFrom(path string) (Config, error) {
	path, err := expandPath(path)
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	if cfg.HistoryPath, err = expandPath(cfg.HistoryPath); err != nil {
		return Default(), err
	}

	// Use defaults for empty values
	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}
	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = "auto"
	}
	if cfg.Columns == nil {
		cfg.Columns = map[string]string{}
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}

	return cfg, nil
}

const defaultConfig = `# tbl configuration

# Where recently browsed datasets are remembered
# history_path = "~/.config/tbl/history.json"

# Theme
# [theme]
# name = "default"    # none, default, dracula, nord, gruvbox, catppuccin
# mode = "auto"       # auto, light or dark
# accent = "#ff79c6"  # override single colors
# nerdfont = false    # use nerd font icons for sort and filter markers

# Cell rendering
# [display]
# max_col_width = 40  # truncate cells in static output (0 = unlimited)
# null = "-"          # text shown for absent cells

# Filter kind per column label
# Available kinds: text, dec, JPY, USD, date, select
# Columns without a kind are not filterable in the browser
#
# [columns]
# Price = "USD"
# Date = "date"
# Status = "select"

# Header text per column label
#
# [labels]
# Price = "Price (USD)"

# Row highlight rules - first matching rule wins
# Levels: info, warning, error, blind
#
# [[highlight]]
# column = "Status"
# contains = "late"
# level = "warning"
#
# [[highlight]]
# column = "Status"
# equals = "cancelled"
# level = "blind"

# Initial view
# [view]
# sort = "Date:desc"
# filters = ["Price:USD:10..", "Status:select:open"]
# hidden = ["InternalID"]

# Any setting can be overridden per dataset with a sidecar file:
# orders.csv -> orders.tbl.toml
`

// DefaultContent returns the default configuration template content.
func DefaultContent() string {
	return defaultConfig
}

// Init creates a default config file at path
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(path string, force bool) (string, error) {
	path, err := expandPath(path)
	if err != nil {
		return "", err
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := storage.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
