package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Link     string
	Selected string
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"ocean-dark", "ocean-light",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark colors.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Link:     "12", // bright blue
		Selected: "14", // bright cyan
		Success:  "10",
		Warning:  "11",
		Error:    "9",
		Info:     "14",
		Muted:    "8",
		Header:   "13",
	},
	"default-light": {
		Link:     "4", // blue
		Selected: "6", // cyan
		Success:  "2",
		Warning:  "3",
		Error:    "1",
		Info:     "6",
		Muted:    "244",
		Header:   "5",
	},
	"mono-dark": {
		Link:     "bold",
		Selected: "15",
		Success:  "15",
		Warning:  "7",
		Error:    "15",
		Info:     "7",
		Muted:    "8",
		Header:   "bold",
	},
	"mono-light": {
		Link:     "bold",
		Selected: "0",
		Success:  "0",
		Warning:  "240",
		Error:    "0",
		Info:     "240",
		Muted:    "244",
		Header:   "bold",
	},
	"ocean-dark": {
		Link:     "45",
		Selected: "51",
		Success:  "42",
		Warning:  "222",
		Error:    "203",
		Info:     "117",
		Muted:    "60",
		Header:   "39",
	},
	"ocean-light": {
		Link:     "25",
		Selected: "31",
		Success:  "29",
		Warning:  "130",
		Error:    "124",
		Info:     "24",
		Muted:    "102",
		Header:   "19",
	},
}

// colorConfigKeys maps config file keys to ColorConfig fields.
var colorConfigKeys = map[string]string{
	"color_link":     "Link",
	"color_selected": "Selected",
	"color_success":  "Success",
	"color_warning":  "Warning",
	"color_error":    "Error",
	"color_info":     "Info",
	"color_muted":    "Muted",
	"color_header":   "Header",
}

// ResolveThemeName expands a base theme name into an explicit variant
// based on the detected terminal background. Explicit names pass
// through unchanged.
func ResolveThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if termenv.HasDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds the effective color configuration: theme
// selection (env beats config), then per-color overrides from env and
// config.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ResolveThemeName("default")

	if envTheme := os.Getenv("BURROW_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	result := theme

	for configKey, fieldName := range colorConfigKeys {
		envKey := "BURROW_" + strings.ToUpper(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Link":
		c.Link = value
	case "Selected":
		c.Selected = value
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	}
}
