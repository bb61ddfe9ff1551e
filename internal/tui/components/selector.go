package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// Option is one choice of a Selector
type Option struct {
	Value string
	Label string
}

// Selector is an exclusive toggle group over a fixed list of options
type Selector struct {
	Label       string
	Options     []Option
	Selected    int
	IsFocused   bool
	Description string
}

// NewSelector creates a selector positioned on value, or the first option
func NewSelector(label string, options []Option, value string) *Selector {
	s := &Selector{Label: label, Options: options}
	s.Select(value)
	return s
}

// Select moves to the option with value; unknown values leave the selection
func (s *Selector) Select(value string) {
	for i, o := range s.Options {
		if o.Value == value {
			s.Selected = i
			return
		}
	}
}

// Value returns the selected option value
func (s *Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected].Value
}

// Next selects the following option, wrapping around
func (s *Selector) Next() {
	if len(s.Options) > 0 {
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
}

// Prev selects the preceding option, wrapping around
func (s *Selector) Prev() {
	if len(s.Options) > 0 {
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	}
}

// SetFocused sets the focus state
func (s *Selector) SetFocused(focused bool) *Selector {
	s.IsFocused = focused
	return s
}

// WithDescription adds a help line
func (s *Selector) WithDescription(desc string) *Selector {
	s.Description = desc
	return s
}

// Render returns the label and the option chips
func (s *Selector) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}

	chip := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Padding(0, 1)
	active := lipgloss.NewStyle().
		Foreground(tuistyles.ColorAccent).
		Background(tuistyles.ColorBorder).
		Bold(true).
		Padding(0, 1)

	chips := make([]string, len(s.Options))
	for i, o := range s.Options {
		if i == s.Selected {
			chips[i] = active.Render(o.Label)
		} else {
			chips[i] = chip.Render(o.Label)
		}
	}

	var content strings.Builder
	content.WriteString(labelStyle.Render(s.Label))
	content.WriteString("\n")
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	if s.Description != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true).Render(s.Description))
	}
	return content.String()
}
