package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// Bar is one labelled row of a BarChart
type Bar struct {
	Label string
	Value int
	Text  string // shown after the bar; defaults to nothing
}

// BarChart draws horizontal bars scaled to the largest value
type BarChart struct {
	Title      string
	Bars       []Bar
	Width      int
	LabelWidth int
}

// NewBarChart creates an empty chart
func NewBarChart(title string) *BarChart {
	return &BarChart{
		Title:      title,
		Width:      30,
		LabelWidth: 10,
	}
}

// Add appends a bar
func (c *BarChart) Add(label string, value int, text string) *BarChart {
	c.Bars = append(c.Bars, Bar{Label: label, Value: value, Text: text})
	return c
}

// WithWidth sets the width of the longest bar
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Length returns the rendered length of a bar holding value
func (c *BarChart) Length(value int) int {
	top := 0
	for _, b := range c.Bars {
		top = max(top, b.Value)
	}
	if top <= 0 || value <= 0 {
		return 0
	}
	return max(1, value*c.Width/top)
}

// Render returns the chart
func (c *BarChart) Render() string {
	if len(c.Bars) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n")
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(c.LabelWidth)
	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	textStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	for i, b := range c.Bars {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(labelStyle.Render(truncate(b.Label, c.LabelWidth-1)))
		content.WriteString(barStyle.Render(strings.Repeat("▇", c.Length(b.Value))))
		if b.Text != "" {
			content.WriteString(" ")
			content.WriteString(textStyle.Render(b.Text))
		}
	}
	return content.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
