// Package tuistyles holds the lipgloss palette and styles shared by the TUI
// scenes and components. It is a leaf package so scenes and components can
// import it without a cycle through the root tui package.
package tuistyles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/domain"
)

// Palette is the set of colors for one theme mode
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	Info       lipgloss.Color
	Background lipgloss.Color
	Paper      lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:    lipgloss.Color("#9aa0a6"),
		Secondary:  lipgloss.Color("#c0c4c8"),
		Accent:     lipgloss.Color("#44ff44"),
		Success:    lipgloss.Color("#44ff44"),
		Danger:     lipgloss.Color("#ff5555"),
		Info:       lipgloss.Color("#8ab4f8"),
		Background: lipgloss.Color("#0b0b0b"),
		Paper:      lipgloss.Color("#121212"),
		Foreground: lipgloss.Color("#e0e0e0"),
		Muted:      lipgloss.Color("#888888"),
		Border:     lipgloss.Color("#333333"),
	}

	LightPalette = Palette{
		Primary:    lipgloss.Color("#3f51b5"),
		Secondary:  lipgloss.Color("#5c6bc0"),
		Accent:     lipgloss.Color("#00897b"),
		Success:    lipgloss.Color("#2e7d32"),
		Danger:     lipgloss.Color("#c62828"),
		Info:       lipgloss.Color("#1565c0"),
		Background: lipgloss.Color("#fafafa"),
		Paper:      lipgloss.Color("#ffffff"),
		Foreground: lipgloss.Color("#212121"),
		Muted:      lipgloss.Color("#757575"),
		Border:     lipgloss.Color("#cfcfcf"),
	}
)

// PaletteFor returns the palette of a theme mode; unknown modes get dark
func PaletteFor(mode domain.ThemeMode) Palette {
	if mode == domain.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// Colors and styles of the active theme. Apply swaps them.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorAccent     lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorDanger     lipgloss.Color
	ColorInfo       lipgloss.Color
	ColorBackground lipgloss.Color
	ColorPaper      lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBorder     lipgloss.Color

	AppStyle            lipgloss.Style
	TitleStyle          lipgloss.Style
	SubtitleStyle       lipgloss.Style
	StatusBarStyle      lipgloss.Style
	StatusKeyStyle      lipgloss.Style
	BorderStyle         lipgloss.Style
	ActiveBorderStyle   lipgloss.Style
	SelectedItemStyle   lipgloss.Style
	UnselectedItemStyle lipgloss.Style
	MetricLabelStyle    lipgloss.Style
	MetricValueStyle    lipgloss.Style
	MetricPositiveStyle lipgloss.Style
	MetricNegativeStyle lipgloss.Style
	ParameterLabelStyle lipgloss.Style
	ParameterValueStyle lipgloss.Style
	SliderTrackStyle    lipgloss.Style
	SliderThumbStyle    lipgloss.Style
	HelpKeyStyle        lipgloss.Style
	HelpDescStyle       lipgloss.Style
	ErrorStyle          lipgloss.Style
	InfoStyle           lipgloss.Style
	TableHeaderStyle    lipgloss.Style
	TableCellStyle      lipgloss.Style
	TableHighlightStyle lipgloss.Style
)

var (
	mu      sync.Mutex
	current domain.ThemeMode
)

func init() {
	Apply(domain.ThemeDark)
}

// Current returns the theme mode last applied
func Current() domain.ThemeMode {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Apply rebuilds every color and style for mode
func Apply(mode domain.ThemeMode) {
	mu.Lock()
	defer mu.Unlock()
	if mode != domain.ThemeLight {
		mode = domain.ThemeDark
	}
	current = mode
	p := PaletteFor(mode)

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorAccent = p.Accent
	ColorSuccess = p.Success
	ColorDanger = p.Danger
	ColorInfo = p.Info
	ColorBackground = p.Background
	ColorPaper = p.Paper
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBorder = p.Border

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Paper).
		Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Background(p.Paper).
		Bold(true)

	BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	ActiveBorderStyle = BorderStyle.BorderForeground(p.Primary)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	MetricLabelStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	MetricValueStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(p.Success)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(p.Danger)

	ParameterLabelStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)

	ParameterValueStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(p.Border)
	SliderThumbStyle = lipgloss.NewStyle().Foreground(p.Primary)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(p.Muted)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Danger).
		Bold(true)

	InfoStyle = lipgloss.NewStyle().
		Foreground(p.Info).
		Italic(true)

	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border)
	TableCellStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TableHighlightStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
}

// TrendIndicator returns the arrow for a change; fewer remaining points down
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// MetricTrendStyle colors a trend
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}
