package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// DetailsModel explains one headline counter: how it is calculated, the
// formula and the assumptions it used
type DetailsModel struct {
	kind   domain.CounterKind
	result *calculation.Result
	width  int
	height int
}

// NewDetailsModel creates a new details scene model
func NewDetailsModel() *DetailsModel {
	return &DetailsModel{kind: domain.CounterCoffees}
}

// SetKind selects the counter to explain
func (m *DetailsModel) SetKind(kind domain.CounterKind) {
	m.kind = kind
}

// Kind returns the counter being explained
func (m *DetailsModel) Kind() domain.CounterKind {
	return m.kind
}

// SetResult updates the evaluation the panel reads from
func (m *DetailsModel) SetResult(result *calculation.Result) {
	m.result = result
}

// SetSize updates the scene dimensions
func (m *DetailsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update cycles through the counters with the arrow keys
func (m *DetailsModel) Update(msg tea.Msg) (*DetailsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	kinds := domain.CounterKinds()
	idx := 0
	for i, k := range kinds {
		if k == m.kind {
			idx = i
		}
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "tab"))):
		m.kind = kinds[(idx+1)%len(kinds)]
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "shift+tab"))):
		m.kind = kinds[(idx-1+len(kinds))%len(kinds)]
	}
	return m, nil
}

// View renders the details panel
func (m *DetailsModel) View() string {
	if m.result == nil {
		return renderNoResultsState()
	}

	a := m.result.Assumptions
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary)
	bodyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)
	if m.width > 8 {
		bodyStyle = bodyStyle.Width(min(m.width-8, 90))
	}
	formulaStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorAccent).
		Background(tuistyles.ColorPaper).
		Padding(0, 1)

	var content strings.Builder
	content.WriteString(titleStyle.Render(copytext.DisplayTitle(m.kind, a)))
	content.WriteString("  ")
	content.WriteString(tuistyles.MetricValueStyle.Render(copytext.FormatCount(m.result.Displayed(m.kind))))
	content.WriteString("\n\n")

	content.WriteString(sectionStyle.Render("How it’s calculated"))
	content.WriteString("\n")
	content.WriteString(bodyStyle.Render(copytext.HowCalculated(m.kind)))
	content.WriteString("\n\n")

	content.WriteString(sectionStyle.Render("Formula"))
	content.WriteString("\n")
	content.WriteString(formulaStyle.Render(copytext.Formula(m.kind)))
	content.WriteString("\n\n")

	content.WriteString(sectionStyle.Render("Assumptions used"))
	content.WriteString("\n")
	for _, line := range copytext.AssumptionsUsed(a) {
		content.WriteString(bodyStyle.Render("• " + line))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(sectionStyle.Render("Factors"))
	content.WriteString("\n")
	content.WriteString(renderFactorTable(m.result.Factors))
	content.WriteString("\n\n")

	content.WriteString(tuistyles.SubtitleStyle.Render(copytext.DetailsFooter))
	content.WriteString("\n")
	content.WriteString(renderDetailsHelp())

	return tuistyles.BorderStyle.Render(content.String())
}

func renderFactorTable(fs calculation.FactorSet) string {
	rows := []struct {
		name   string
		value  float64
		bounds calculation.FactorBounds
	}{
		{"health condition", fs.HealthCondition, calculation.HealthConditionBounds},
		{"eating habits", fs.EatingHabits, calculation.EatingHabitsBounds},
		{"lifestyle", fs.Lifestyle, calculation.LifestyleBounds},
		{"habits", fs.Habits, calculation.HabitsBounds},
		{"optimism", fs.Optimism, calculation.OptimismBounds},
		{"age", fs.Age, calculation.AgeBounds},
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = tuistyles.TableCellStyle.Render(fmt.Sprintf("  %-18s %5.3f", r.name, r.value)) +
			lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(fmt.Sprintf("  [%.2f, %.2f]", r.bounds.Min, r.bounds.Max))
	}
	return strings.Join(lines, "\n")
}

func renderNoResultsState() string {
	return `Nothing to explain yet.

Press ESC to go back.`
}

func renderDetailsHelp() string {
	return tuistyles.HelpDescStyle.Render("←/→ other counter • ESC back")
}
