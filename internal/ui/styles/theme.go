package styles

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/raphi011/tbl/internal/config"
)

// Theme is the color palette of the table output and browser
type Theme struct {
	Primary color.Color // headers, titles, borders
	Accent  color.Color // focused column, fuzzy matches
	Success color.Color // range bar
	Error   color.Color // error rows and messages
	Muted   color.Color // blind rows, help text
	Normal  color.Color // cells
	Info    color.Color // info rows
	Warning color.Color // warning rows
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

// palette builds a Theme from colors in field order: primary, accent,
// success, error, muted, normal, info, warning.
func palette(colors ...string) *Theme {
	c := make([]color.Color, 8)
	for i := range c {
		c[i] = lipgloss.Color(colors[i])
	}
	return &Theme{
		Primary: c[0], Accent: c[1], Success: c[2], Error: c[3],
		Muted: c[4], Normal: c[5], Info: c[6], Warning: c[7],
	}
}

// DefaultTheme uses the ANSI 256 palette and has no light variant
var DefaultTheme = *palette("62", "212", "82", "196", "240", "252", "244", "214")

// noneTheme keeps terminal default colors; bold, italic and underline still apply
var noneTheme = Theme{
	Primary: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
	Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{},
	Muted: lipgloss.NoColor{}, Normal: lipgloss.NoColor{},
	Info: lipgloss.NoColor{}, Warning: lipgloss.NoColor{},
}

// themeFamilies maps the theme.name values to their variants
var themeFamilies = map[string]themeFamily{
	"none":    {Light: &noneTheme, Dark: &noneTheme},
	"default": {Dark: &DefaultTheme},
	"dracula": {
		Dark: palette("#bd93f9", "#ff79c6", "#50fa7b", "#ff5555", "#6272a4", "#f8f8f2", "#8be9fd", "#ffb86c"),
	},
	"nord": {
		Light: palette("#5e81ac", "#b48ead", "#a3be8c", "#bf616a", "#9a9a9a", "#2e3440", "#81a1c1", "#d08770"),
		Dark:  palette("#88c0d0", "#b48ead", "#a3be8c", "#bf616a", "#4c566a", "#eceff4", "#81a1c1", "#ebcb8b"),
	},
	"gruvbox": {
		Light: palette("#076678", "#8f3f71", "#79740e", "#9d0006", "#928374", "#3c3836", "#427b58", "#b57614"),
		Dark:  palette("#83a598", "#d3869b", "#b8bb26", "#fb4934", "#665c54", "#ebdbb2", "#8ec07c", "#fabd2f"),
	},
	"catppuccin": {
		// latte and mocha
		Light: palette("#1e66f5", "#ea76cb", "#40a02b", "#d20f39", "#9ca0b0", "#4c4f69", "#179299", "#fe640b"),
		Dark:  palette("#89b4fa", "#f5c2e7", "#a6e3a1", "#f38ba8", "#6c7086", "#cdd6f4", "#94e2d5", "#fab387"),
	},
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init selects the theme from config and rebuilds the package styles.
// Call it after loading config and before rendering anything.
func Init(cfg config.ThemeConfig) {
	theme := selectTheme(cfg)

	overrides := []struct {
		value string
		field *color.Color
	}{
		{cfg.Primary, &theme.Primary},
		{cfg.Accent, &theme.Accent},
		{cfg.Success, &theme.Success},
		{cfg.Error, &theme.Error},
		{cfg.Muted, &theme.Muted},
		{cfg.Normal, &theme.Normal},
		{cfg.Info, &theme.Info},
		{cfg.Warning, &theme.Warning},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.field = lipgloss.Color(o.value)
		}
	}

	currentTheme = theme
	applyTheme(theme)
	SetNerdfont(cfg.Nerdfont)
}

// detectDark reports whether the terminal has a dark background.
var detectDark = func() bool {
	return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
}

// selectTheme picks the appropriate theme based on config and terminal background
func selectTheme(cfg config.ThemeConfig) Theme {
	mode := cfg.Mode
	if mode == "" {
		mode = "auto"
	}

	family, ok := themeFamilies[cfg.Name]
	if !ok {
		if cfg.Name != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default (available: %s)\n",
				cfg.Name, strings.Join(config.ValidThemeNames, ", "))
		}
		family = themeFamilies["default"]
	}

	var dark bool
	switch mode {
	case "light":
		dark = false
	case "dark":
		dark = true
	case "auto":
		dark = detectDark()
	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown theme mode %q, using auto (available: %s)\n",
			mode, strings.Join(config.ValidThemeModes, ", "))
		dark = detectDark()
	}
	return family.variant(dark)
}

// variant returns the requested variant, falling back to the other one
func (f themeFamily) variant(dark bool) Theme {
	first, second := f.Light, f.Dark
	if dark {
		first, second = f.Dark, f.Light
	}
	switch {
	case first != nil:
		return *first
	case second != nil:
		return *second
	default:
		return DefaultTheme
	}
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	// Update color variables
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Info = t.Info
	Warning = t.Warning

	// Update style variables
	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)

	// Update border styles
	RoundedBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)

	// Update highlight style
	HighlightStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)
}

// GetPreset returns a theme preset by name, or nil if not found
// For theme families with variants, returns the dark variant by default
func GetPreset(name string) *Theme {
	if family, ok := themeFamilies[name]; ok {
		if family.Dark != nil {
			return family.Dark
		}
		return family.Light
	}
	return nil
}

// PresetNames returns a list of available preset names (theme families)
func PresetNames() []string {
	return config.ValidThemeNames
}
