package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// ProgressBar shows how far along a fixed span a count is, e.g. the steps
// walked since the last street lamp
type ProgressBar struct {
	Current     int
	Total       int
	Width       int
	Label       string
	ShowPercent bool
	ShowCount   bool
}

// NewProgressBar creates a new progress bar
func NewProgressBar(current, total int) *ProgressBar {
	return &ProgressBar{
		Current:   current,
		Total:     total,
		Width:     20,
		ShowCount: true,
	}
}

// WithLabel sets the label shown above the bar
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage returns the completion percentage, 0..100
func (p *ProgressBar) Percentage() float64 {
	if p.Total <= 0 {
		return 0
	}
	pct := float64(p.Current) / float64(p.Total) * 100
	return max(0, min(100, pct))
}

// IsComplete reports whether the span has been covered
func (p *ProgressBar) IsComplete() bool {
	return p.Total > 0 && p.Current >= p.Total
}

// Render returns the styled progress bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		content.WriteString(tuistyles.MetricLabelStyle.Render(p.Label))
		content.WriteString("\n")
	}

	filled := int(float64(p.Width) * p.Percentage() / 100)
	empty := p.Width - filled

	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	content.WriteString("]")

	var stats []string
	if p.ShowPercent {
		stats = append(stats, fmt.Sprintf("%.0f%%", p.Percentage()))
	}
	if p.ShowCount {
		stats = append(stats, fmt.Sprintf("%d/%d", p.Current, p.Total))
	}
	if len(stats) > 0 {
		content.WriteString(" ")
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(strings.Join(stats, " • ")))
	}

	return content.String()
}
