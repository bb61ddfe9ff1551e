package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// ParameterSlider is an integer slider over a closed range
type ParameterSlider struct {
	Label       string
	Value       int
	Min         int
	Max         int
	Step        int
	Unit        string
	Marks       map[int]string // optional caption per value, e.g. 1 -> "Poor"
	Width       int
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a slider with step 1
func NewParameterSlider(label string, value, min, max int) *ParameterSlider {
	p := &ParameterSlider{
		Label: label,
		Min:   min,
		Max:   max,
		Step:  1,
		Width: 30,
	}
	p.SetValue(value)
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithStep sets the increment used by the arrow keys
func (p *ParameterSlider) WithStep(step int) *ParameterSlider {
	if step > 0 {
		p.Step = step
	}
	return p
}

// WithMarks sets the per-value captions
func (p *ParameterSlider) WithMarks(marks map[int]string) *ParameterSlider {
	p.Marks = marks
	return p
}

// WithWidth sets the bar width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a help line
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment moves one step up, stopping at Max
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement moves one step down, stopping at Min
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue sets the value, clamped to [Min, Max]
func (p *ParameterSlider) SetValue(value int) {
	p.Value = max(p.Min, min(p.Max, value))
}

// Percentage returns the position of the value in the range, 0..1
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return float64(p.Value-p.Min) / float64(p.Max-p.Min)
}

func (p *ParameterSlider) valueString(v int) string {
	s := fmt.Sprintf("%d%s", v, p.Unit)
	if mark, ok := p.Marks[v]; ok {
		s += " (" + mark + ")"
	}
	return s
}

// Render returns the slider with label, value, bar and range
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(p.valueString(p.Value)))
	content.WriteString("\n")
	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(" ")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%d%s ─ %d%s", p.Min, p.Unit, p.Max, p.Unit)))

	if p.Description != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	return content.String()
}

func (p *ParameterSlider) renderSliderBar() string {
	width := max(p.Width, 2)
	thumb := int(math.Round(float64(width-1) * p.Percentage()))

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}
	trackStyle := tuistyles.SliderTrackStyle

	var bar strings.Builder
	bar.WriteString("[")
	if thumb > 0 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", thumb)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if rest := width - thumb - 1; rest > 0 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", rest)))
	}
	bar.WriteString("]")
	return bar.String()
}

// RenderCompact returns a single-line version
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	return fmt.Sprintf("%s %s", labelStyle.Render(p.Label+":"), valueStyle.Render(p.valueString(p.Value)))
}
