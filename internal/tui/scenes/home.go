package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/sensor"
	"github.com/rgehrsitz/countdown/internal/tui/components"
	"github.com/rgehrsitz/countdown/internal/tui/tuimsg"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// SensorCard is the display of one sensor counter with its lamp progress
type SensorCard struct {
	Display  sensor.Display
	Progress *components.ProgressBar
}

// HomeModel is the dashboard: the four headline counters, the current
// catalog sample and the sensor counters. The cursor runs over the counters
// first and then over the catalog tiles.
type HomeModel struct {
	result  *calculation.Result
	sensors []SensorCard
	flash   string
	cursor  int
	width   int
	height  int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetResult updates the evaluation shown on the dashboard
func (m *HomeModel) SetResult(result *calculation.Result) {
	m.result = result
	if m.cursor >= m.positions() {
		m.cursor = 0
	}
}

// SetSensors updates the sensor cards
func (m *HomeModel) SetSensors(cards []SensorCard) {
	m.sensors = cards
}

// SetFlash sets the transient status line; empty hides it
func (m *HomeModel) SetFlash(text string) {
	m.flash = text
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the focused position
func (m *HomeModel) Cursor() int {
	return m.cursor
}

func (m *HomeModel) positions() int {
	if m.result == nil {
		return 0
	}
	return len(domain.CounterKinds()) + len(m.result.Items)
}

func (m *HomeModel) gridColumns() int {
	switch {
	case m.width >= 112:
		return 4
	case m.width >= 84:
		return 3
	case m.width >= 56:
		return 2
	default:
		return 1
	}
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.result == nil {
		return m, nil
	}

	kinds := domain.CounterKinds()
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "tab"))):
		m.move(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "shift+tab"))):
		m.move(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		m.move(m.rowStep(kinds))
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.move(-m.rowStep(kinds))

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		return m, m.open(kinds)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("n"))):
		return m, func() tea.Msg { return tuimsg.NewAssumptionSetMsg{} }

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+s", "w"))):
		return m, func() tea.Msg { return tuimsg.SaveSnapshotMsg{} }

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("u"))):
		a := m.result.Assumptions
		next := domain.UnitModeYearly
		if a.UnitMode == domain.UnitModeYearly {
			next = domain.UnitModeWeekly
		}
		edited := a.WithUnitMode(next)
		return m, func() tea.Msg { return tuimsg.AssumptionsEditedMsg{Assumptions: edited} }
	}

	return m, nil
}

// rowStep is how far up/down moves: one row of counters or one grid row
func (m *HomeModel) rowStep(kinds []domain.CounterKind) int {
	if m.cursor < len(kinds) {
		return 2
	}
	return m.gridColumns()
}

func (m *HomeModel) move(delta int) {
	n := m.positions()
	if n == 0 {
		return
	}
	m.cursor = max(0, min(n-1, m.cursor+delta))
}

func (m *HomeModel) open(kinds []domain.CounterKind) tea.Cmd {
	if m.cursor < len(kinds) {
		kind := kinds[m.cursor]
		return func() tea.Msg { return tuimsg.ShowDetailsMsg{Kind: kind} }
	}
	idx := m.cursor - len(kinds)
	if idx < len(m.result.Items) {
		id := m.result.Items[idx].Item.ID
		return func() tea.Msg { return tuimsg.ShowItemMsg{ItemID: id} }
	}
	return nil
}

// View renders the dashboard
func (m *HomeModel) View() string {
	if m.result == nil {
		return tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render("Loading assumptions..."))
	}

	a := m.result.Assumptions
	micro := copytext.Microcopy(a.Tone)

	var content strings.Builder
	content.WriteString(tuistyles.SubtitleStyle.Render(micro.Prompt))
	content.WriteString("\n\n")
	content.WriteString(m.renderCounters())
	content.WriteString("\n\n")

	if len(m.sensors) > 0 {
		content.WriteString(m.renderSensors())
		content.WriteString("\n\n")
	}

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary)
	content.WriteString(sectionStyle.Render("Assumptions base"))
	content.WriteString("\n")
	content.WriteString(m.renderGrid())
	content.WriteString("\n")

	if m.flash != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.InfoStyle.Render(m.flash))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(micro.Disclaimer))
	content.WriteString("\n")
	content.WriteString(renderHomeHelp())

	return content.String()
}

func (m *HomeModel) renderCounters() string {
	a := m.result.Assumptions
	width := 34
	if m.width > 0 && m.width < 72 {
		width = max(20, m.width-4)
	}

	var cards []*components.MetricCard
	for i, kind := range domain.CounterKinds() {
		card := components.NewMetricCard(
			copytext.DisplayTitle(kind, a),
			copytext.FormatCount(m.result.Displayed(kind)),
		).
			WithDescription(copytext.Subtext(kind, a)).
			WithWidth(width).
			SetSelected(i == m.cursor)
		cards = append(cards, card)
	}

	columns := 2
	if m.width > 0 && m.width < 72 {
		columns = 1
	}
	return components.MetricGrid(cards, columns)
}

func (m *HomeModel) renderSensors() string {
	cards := make([]string, 0, len(m.sensors))
	for _, s := range m.sensors {
		body := tuistyles.MetricValueStyle.Render(s.Display.Value) + "\n" +
			tuistyles.MetricLabelStyle.Render(s.Display.Unit)
		if s.Progress != nil {
			body += "\n" + s.Progress.Render()
		}
		cards = append(cards, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tuistyles.ColorBorder).
			Padding(0, 1).
			Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *HomeModel) renderGrid() string {
	offset := len(domain.CounterKinds())
	cards := make([]*components.ItemCard, len(m.result.Items))
	for i, iv := range m.result.Items {
		cards[i] = components.NewItemCard(iv.Item.Label, copytext.FormatCount(iv.Value), iv.Item.Unit).
			SetSelected(m.cursor == offset+i)
	}
	return components.ItemGrid(cards, m.gridColumns())
}

func renderHomeHelp() string {
	return tuistyles.HelpDescStyle.Render("←/→/↑/↓ move • Enter details • n new set • w save snapshot • u weeks/years • a assumptions • t theme")
}
