package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// ItemModel shows one valued catalog item
type ItemModel struct {
	item  *calculation.ItemValue
	width int
}

// NewItemModel creates a new item scene model
func NewItemModel() *ItemModel {
	return &ItemModel{}
}

// SetItem sets the item to show; nil shows the empty state
func (m *ItemModel) SetItem(item *calculation.ItemValue) {
	m.item = item
}

// Item returns the item being shown
func (m *ItemModel) Item() *calculation.ItemValue {
	return m.item
}

// SetSize updates the scene dimensions
func (m *ItemModel) SetSize(width, height int) {
	m.width = width
}

// Update is a no-op; the scene is read-only
func (m *ItemModel) Update(msg tea.Msg) (*ItemModel, tea.Cmd) {
	return m, nil
}

// View renders the item
func (m *ItemModel) View() string {
	if m.item == nil {
		return `No assumption selected.

Press ESC to go back.`
	}

	it := m.item.Item
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	labelStyle := tuistyles.MetricLabelStyle
	bodyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	tags := make([]string, len(it.AffectedBy))
	for i, t := range it.AffectedBy {
		tags[i] = string(t)
	}
	affected := strings.Join(tags, ", ")
	if affected == "" {
		affected = "nothing"
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(it.Label))
	content.WriteString("\n")
	content.WriteString(tuistyles.MetricValueStyle.Render(copytext.FormatCount(m.item.Value)))
	content.WriteString(" " + labelStyle.Render(it.Unit))
	content.WriteString("\n\n")
	content.WriteString(bodyStyle.Render(it.Description))
	content.WriteString("\n\n")
	content.WriteString(labelStyle.Render("Calculation: "))
	content.WriteString(bodyStyle.Render(it.CalculationHint))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Affected by: "))
	content.WriteString(bodyStyle.Render(affected))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Base count × factor: "))
	content.WriteString(bodyStyle.Render(fmt.Sprintf("%.1f × %.3f", m.item.BaseCount, m.item.Factor)))
	content.WriteString("\n\n")
	content.WriteString(tuistyles.HelpDescStyle.Render("ESC back"))

	return tuistyles.BorderStyle.Render(content.String())
}
