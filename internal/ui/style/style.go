// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place outside the browser views where
// lipgloss is configured. All styling is semantic (Link, Error, Muted)
// rather than visual. When disabled, all helpers return the input
// string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	linkStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	successStyle  lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	infoStyle     lipgloss.Style
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
)

// Init initializes the style package with the given enabled state and
// config. NO_COLOR and BURROW_NO_COLOR disable styling regardless of
// the enabled parameter.
//
// This function should be called once from main before the UI starts.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("BURROW_NO_COLOR") != "" {
		enabled = false
		colors = ColorConfig{}
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
// Returns empty config if styling is not enabled.
func GetColors() ColorConfig {
	return colors
}

// initStyles creates the lipgloss styles from the given color
// configuration. Uses the ANSI 256-color palette regardless of TTY
// detection so both basic and extended colors work.
func initStyles(colors ColorConfig) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	linkStyle = makeStyle(colors.Link)
	selectedStyle = makeStyle(colors.Selected).Bold(true)
	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Link styles text as a navigable link.
func Link(text string) string {
	if !enabled {
		return text
	}
	return linkStyle.Render(text)
}

// Selected styles text as the current selection.
func Selected(text string) string {
	if !enabled {
		return text
	}
	return selectedStyle.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}
