// Package tui provides the terminal user interface for Macro Manager.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/macromgr/macromgr/internal/config"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	// Colors (raw values for reference)
	PrimaryColor    lipgloss.Color
	SecondaryColor  lipgloss.Color
	AccentColor     lipgloss.Color
	BackgroundColor lipgloss.Color
	MutedColor      lipgloss.Color

	// Base styles
	Base lipgloss.Style
	Bold lipgloss.Style

	// Color styles (for direct use)
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	// Component styles
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Box       lipgloss.Style
	Alert     lipgloss.Style
	AlertWarn lipgloss.Style
	AlertCrit lipgloss.Style

	// Status bar
	StatusKey     lipgloss.Style
	StatusDivider lipgloss.Style
}

// NewTheme creates a new theme based on the color scheme configuration.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeLight:
		return newLightTheme()
	case config.ColorSchemeMono:
		return newMonoTheme()
	default:
		return newDarkTheme()
	}
}

// newDarkTheme creates the default green-on-black theme.
func newDarkTheme() *Theme {
	primary := lipgloss.Color("#00FF00")
	secondary := lipgloss.Color("#00AA00")
	accent := lipgloss.Color("#66FF66")
	background := lipgloss.Color("#000000")
	foreground := lipgloss.Color("#00FF00")
	muted := lipgloss.Color("#006600")
	errorColor := lipgloss.Color("#FF4444")
	warningColor := lipgloss.Color("#FFAA00")
	successColor := lipgloss.Color("#00FF00")

	return buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor)
}

// newLightTheme creates a theme for terminals with a light background.
func newLightTheme() *Theme {
	primary := lipgloss.Color("#005F00")
	secondary := lipgloss.Color("#3A3A3A")
	accent := lipgloss.Color("#008700")
	background := lipgloss.Color("#FFFFFF")
	foreground := lipgloss.Color("#1C1C1C")
	muted := lipgloss.Color("#8A8A8A")
	errorColor := lipgloss.Color("#AF0000")
	warningColor := lipgloss.Color("#AF5F00")
	successColor := lipgloss.Color("#005F00")

	return buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor)
}

// newMonoTheme creates a grayscale theme.
func newMonoTheme() *Theme {
	primary := lipgloss.Color("#FFFFFF")
	secondary := lipgloss.Color("#AAAAAA")
	accent := lipgloss.Color("#FFFFFF")
	background := lipgloss.Color("#000000")
	foreground := lipgloss.Color("#FFFFFF")
	muted := lipgloss.Color("#666666")
	errorColor := lipgloss.Color("#FFFFFF")
	warningColor := lipgloss.Color("#DDDDDD")
	successColor := lipgloss.Color("#FFFFFF")

	return buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor)
}

func buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor lipgloss.Color) *Theme {
	t := &Theme{
		PrimaryColor:    primary,
		SecondaryColor:  secondary,
		AccentColor:     accent,
		BackgroundColor: background,
		MutedColor:      muted,
	}

	// Base styles
	t.Base = lipgloss.NewStyle().
		Foreground(foreground)

	t.Bold = t.Base.Bold(true)

	// Color styles for direct use
	t.Primary = lipgloss.NewStyle().Foreground(primary)
	t.Secondary = lipgloss.NewStyle().Foreground(secondary)
	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(warningColor)
	t.Success = lipgloss.NewStyle().Foreground(successColor)
	t.Muted = lipgloss.NewStyle().Foreground(muted)

	// Header - top bar with the current split
	t.Header = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		Padding(0, 1)

	// Footer - bottom status bar
	t.Footer = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	// Title - main headings
	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	// Subtitle - secondary headings
	t.Subtitle = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.Label = lipgloss.NewStyle().
		Foreground(secondary)

	t.Value = lipgloss.NewStyle().
		Foreground(primary)

	// Box - bordered container
	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	// Alerts
	t.Alert = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	t.AlertWarn = lipgloss.NewStyle().
		Foreground(warningColor).
		Bold(true)

	t.AlertCrit = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true).
		Blink(true)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.StatusDivider = lipgloss.NewStyle().
		Foreground(muted).
		SetString(" │ ")

	return t
}

// Box characters for drawing
const (
	BoxHorizontal       = "─"
	BoxDoubleHorizontal = "═"
)

// DrawHorizontalLine draws a horizontal line.
func (t *Theme) DrawHorizontalLine(width int) string {
	if width < 0 {
		width = 0
	}
	return t.Secondary.Render(strings.Repeat(BoxHorizontal, width))
}

// DrawDoubleLine draws a double horizontal line.
func (t *Theme) DrawDoubleLine(width int) string {
	if width < 0 {
		width = 0
	}
	return t.Primary.Render(strings.Repeat(BoxDoubleHorizontal, width))
}
