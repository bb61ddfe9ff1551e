package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// ItemCard is one tile of the catalog grid
type ItemCard struct {
	Label      string
	Value      string
	Unit       string
	IsSelected bool
	Width      int
}

// NewItemCard creates a catalog tile
func NewItemCard(label, value, unit string) *ItemCard {
	return &ItemCard{
		Label: label,
		Value: value,
		Unit:  unit,
		Width: 26,
	}
}

// SetSelected marks the tile as the cursor position
func (c *ItemCard) SetSelected(selected bool) *ItemCard {
	c.IsSelected = selected
	return c
}

// WithWidth sets the tile width
func (c *ItemCard) WithWidth(width int) *ItemCard {
	c.Width = width
	return c
}

// Render returns the styled tile
func (c *ItemCard) Render() string {
	var content strings.Builder

	value := tuistyles.MetricValueStyle.Render(c.Value)
	unit := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(" " + c.Unit)
	content.WriteString(value + unit)
	content.WriteString("\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorForeground).
		Width(c.Width - 4)
	content.WriteString(labelStyle.Render(c.Label))

	border := tuistyles.ColorBorder
	if c.IsSelected {
		border = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(c.Width)

	return cardStyle.Render(content.String())
}

// RenderCompact returns a single line for narrow terminals
func (c *ItemCard) RenderCompact() string {
	prefix := "  "
	style := tuistyles.UnselectedItemStyle
	if c.IsSelected {
		prefix = "▸ "
		style = tuistyles.SelectedItemStyle
	}
	return style.Render(prefix+c.Label+": ") + tuistyles.MetricValueStyle.Render(c.Value) + " " + c.Unit
}

// ItemGrid renders tiles in rows of columns; columns < 2 falls back to the
// compact list
func ItemGrid(cards []*ItemCard, columns int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No assumptions to show")
	}

	if columns < 2 {
		lines := make([]string, len(cards))
		for i, card := range cards {
			lines[i] = card.RenderCompact()
		}
		return strings.Join(lines, "\n")
	}

	var rows []string
	var row []string
	for i, card := range cards {
		row = append(row, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
