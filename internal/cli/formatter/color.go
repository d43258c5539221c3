package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mvilaseca/eduplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// IntensityStyle returns the style for a curriculum work intensity.
func IntensityStyle(intensity domain.Intensity) lipgloss.Style {
	switch intensity {
	case domain.IntensityHigh:
		return StyleRed
	case domain.IntensityMedium:
		return StyleYellow
	case domain.IntensityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// CoverageStyle colors a coverage percentage: green from 66%, yellow
// from 33%, red below.
func CoverageStyle(percent int) lipgloss.Style {
	switch {
	case percent >= 66:
		return StyleGreen
	case percent >= 33:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
