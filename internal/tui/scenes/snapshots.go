package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/compare"
	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/tui/components"
	"github.com/rgehrsitz/countdown/internal/tui/tuimsg"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// SnapshotsModel lists the stored snapshots and compares them with the
// committed model
type SnapshotsModel struct {
	snapshots  []domain.Snapshot
	comparison *compare.ComparisonSet
	kind       domain.CounterKind
	width      int
	height     int
}

// NewSnapshotsModel creates a new snapshots scene model
func NewSnapshotsModel() *SnapshotsModel {
	return &SnapshotsModel{kind: domain.CounterSundays}
}

// SetData updates the history and its comparison; comparison may be nil
func (m *SnapshotsModel) SetData(snapshots []domain.Snapshot, comparison *compare.ComparisonSet) {
	m.snapshots = snapshots
	m.comparison = comparison
}

// SetSize updates the scene dimensions
func (m *SnapshotsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles save, clear and the compared counter
func (m *SnapshotsModel) Update(msg tea.Msg) (*SnapshotsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+s", "w"))):
		return m, func() tea.Msg { return tuimsg.SaveSnapshotMsg{} }

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("x"))):
		if len(m.snapshots) == 0 {
			return m, nil
		}
		return m, func() tea.Msg { return tuimsg.ClearSnapshotsMsg{} }

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "tab"))):
		m.cycleKind(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "shift+tab"))):
		m.cycleKind(-1)
	}
	return m, nil
}

func (m *SnapshotsModel) cycleKind(delta int) {
	kinds := domain.CounterKinds()
	for i, k := range kinds {
		if k == m.kind {
			m.kind = kinds[(i+delta+len(kinds))%len(kinds)]
			return
		}
	}
	m.kind = domain.CounterSundays
}

// View renders the list, the chart and the observations
func (m *SnapshotsModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Snapshots"))
	content.WriteString("\n\n")

	if len(m.snapshots) == 0 {
		content.WriteString(subtleStyle.Render(copytext.NoSnapshots))
		content.WriteString("\n\n")
		content.WriteString(tuistyles.HelpDescStyle.Render("w save snapshot • ESC back"))
		return tuistyles.BorderStyle.Render(content.String())
	}

	for _, s := range m.snapshots {
		content.WriteString(tuistyles.TableCellStyle.Render("• " + copytext.SnapshotLine(s)))
		content.WriteString("\n")
	}

	if m.comparison != nil && m.comparison.BaseResult != nil {
		content.WriteString("\n")
		content.WriteString(m.renderChart())
		content.WriteString("\n")

		if len(m.comparison.Observations) > 0 {
			content.WriteString("\n")
			for _, o := range m.comparison.Observations {
				content.WriteString(tuistyles.InfoStyle.Render("• " + o))
				content.WriteString("\n")
			}
		}
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.HelpDescStyle.Render("w save snapshot • x clear • ←/→ counter • ESC back"))
	return tuistyles.BorderStyle.Render(content.String())
}

func (m *SnapshotsModel) renderChart() string {
	chart := components.NewBarChart(copytext.Title(m.kind)).WithWidth(30)

	base := m.comparison.BaseResult
	chart.Add(base.Label, base.Value(m.kind), copytext.FormatCount(base.Value(m.kind)))
	for i := range m.comparison.AlternativeResults {
		row := &m.comparison.AlternativeResults[i]
		diff := row.Diff(m.kind).Abs
		text := fmt.Sprintf("%s (%s)", copytext.FormatCount(row.Value(m.kind)), signed(diff.IntPart()))
		chart.Add(row.Label, row.Value(m.kind), text)
	}
	return chart.Render()
}

func signed(n int64) string {
	switch {
	case n > 0:
		return fmt.Sprintf("+%d", n)
	case n == 0:
		return "="
	default:
		return fmt.Sprintf("%d", n)
	}
}
