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
	"github.com/rgehrsitz/countdown/internal/tui/components"
	"github.com/rgehrsitz/countdown/internal/tui/tuimsg"
	"github.com/rgehrsitz/countdown/internal/tui/tuistyles"
)

// field identifies one control of the editor, in display order
type field int

const (
	fieldAge field = iota
	fieldHealth
	fieldEating
	fieldLifeExpectancy
	fieldCoffees
	fieldWorkdays
	fieldOptimism
	fieldTone
	fieldUnitMode
	fieldCount
)

// AssumptionsModel edits the draft model with sliders and selectors. Every
// change is sent up as an AssumptionsEditedMsg; the root model decides when
// it is committed.
type AssumptionsModel struct {
	draft   domain.Assumptions
	focused field

	age, health, eating, coffees, workdays, optimism *components.ParameterSlider
	lifeExpectancy, tone, unitMode                   *components.Selector

	width  int
	height int
}

// NewAssumptionsModel creates the editor positioned on the default model
func NewAssumptionsModel() *AssumptionsModel {
	m := &AssumptionsModel{
		age: components.NewParameterSlider("Age", 0, domain.MinAge, domain.MaxAge).
			WithUnit(" y").WithWidth(40),
		health: components.NewParameterSlider("Health condition", 0, domain.MinHealthCondition, domain.MaxHealthCondition).
			WithMarks(copytext.HealthMarks).WithWidth(20),
		eating: components.NewParameterSlider("Eating habits", 0, domain.MinEatingHabits, domain.MaxEatingHabits).
			WithMarks(copytext.EatingMarks).WithWidth(20),
		coffees: components.NewParameterSlider("Coffees/day", 0, domain.MinCoffeesPerDay, domain.MaxCoffeesPerDay).
			WithWidth(20),
		workdays: components.NewParameterSlider("Workdays/week", 0, domain.MinWorkdaysPerWeek, domain.MaxWorkdaysPerWeek).
			WithWidth(20),
		optimism: components.NewParameterSlider("Optimism", 0, domain.MinOptimism, domain.MaxOptimism).
			WithUnit("/10").WithWidth(20),
	}

	var le []components.Option
	for _, v := range domain.LifeExpectancies() {
		le = append(le, components.Option{Value: string(v), Label: copytext.LifeExpectancyLabel(v)})
	}
	m.lifeExpectancy = components.NewSelector("Life expectancy", le, "")

	var tones []components.Option
	for _, v := range domain.Tones() {
		tones = append(tones, components.Option{Value: string(v), Label: copytext.ToneLabel(v)})
	}
	m.tone = components.NewSelector("Absurdity tone", tones, "")

	m.unitMode = components.NewSelector("Sundays shown in", []components.Option{
		{Value: string(domain.UnitModeWeekly), Label: copytext.UnitModeLabel(domain.UnitModeWeekly)},
		{Value: string(domain.UnitModeYearly), Label: copytext.UnitModeLabel(domain.UnitModeYearly)},
	}, "")

	m.SetAssumptions(domain.DefaultAssumptions())
	m.applyFocus()
	return m
}

// SetAssumptions moves every control to a; focus is kept
func (m *AssumptionsModel) SetAssumptions(a domain.Assumptions) {
	a = a.Normalize()
	m.draft = a
	m.age.SetValue(a.Age)
	m.health.SetValue(a.HealthCondition)
	m.eating.SetValue(a.EatingHabits)
	m.coffees.SetValue(a.CoffeesPerDay)
	m.workdays.SetValue(a.WorkdaysPerWeek)
	m.optimism.SetValue(a.Optimism)
	m.lifeExpectancy.Select(string(a.LifeExpectancy))
	m.tone.Select(string(a.Tone))
	m.unitMode.Select(string(a.UnitMode))
}

// Draft returns the model the controls currently describe
func (m *AssumptionsModel) Draft() domain.Assumptions {
	return m.draft
}

// SetSize updates the scene dimensions
func (m *AssumptionsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the editor
func (m *AssumptionsModel) Update(msg tea.Msg) (*AssumptionsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k", "shift+tab"))):
		if m.focused > 0 {
			m.focused--
			m.applyFocus()
		}
		return m, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		if m.focused < fieldCount-1 {
			m.focused++
			m.applyFocus()
		}
		return m, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "-"))):
		return m, m.adjust(-1)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "+", "="))):
		return m, m.adjust(1)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("pgdown"))):
		return m, m.adjust(-10)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("pgup"))):
		return m, m.adjust(10)

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("r"))):
		return m, func() tea.Msg { return tuimsg.ResetMsg{} }

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("R"))):
		return m, func() tea.Msg { return tuimsg.ResetMsg{All: true} }
	}

	return m, nil
}

func (m *AssumptionsModel) applyFocus() {
	m.age.SetFocused(m.focused == fieldAge)
	m.health.SetFocused(m.focused == fieldHealth)
	m.eating.SetFocused(m.focused == fieldEating)
	m.lifeExpectancy.SetFocused(m.focused == fieldLifeExpectancy)
	m.coffees.SetFocused(m.focused == fieldCoffees)
	m.workdays.SetFocused(m.focused == fieldWorkdays)
	m.optimism.SetFocused(m.focused == fieldOptimism)
	m.tone.SetFocused(m.focused == fieldTone)
	m.unitMode.SetFocused(m.focused == fieldUnitMode)
}

// adjust moves the focused control by steps and emits the new draft
func (m *AssumptionsModel) adjust(steps int) tea.Cmd {
	slide := func(s *components.ParameterSlider) {
		s.SetValue(s.Value + steps*s.Step)
	}
	choose := func(s *components.Selector) {
		if steps > 0 {
			s.Next()
		} else {
			s.Prev()
		}
	}

	a := m.draft
	switch m.focused {
	case fieldAge:
		slide(m.age)
		a = a.WithAge(m.age.Value)
	case fieldHealth:
		slide(m.health)
		a = a.WithHealthCondition(m.health.Value)
	case fieldEating:
		slide(m.eating)
		a = a.WithEatingHabits(m.eating.Value)
	case fieldCoffees:
		slide(m.coffees)
		a = a.WithCoffeesPerDay(m.coffees.Value)
	case fieldWorkdays:
		slide(m.workdays)
		a = a.WithWorkdaysPerWeek(m.workdays.Value)
	case fieldOptimism:
		slide(m.optimism)
		a = a.WithOptimism(m.optimism.Value)
	case fieldLifeExpectancy:
		choose(m.lifeExpectancy)
		a = a.WithLifeExpectancy(domain.LifeExpectancy(m.lifeExpectancy.Value()))
	case fieldTone:
		choose(m.tone)
		a = a.WithTone(domain.Tone(m.tone.Value()))
	case fieldUnitMode:
		choose(m.unitMode)
		a = a.WithUnitMode(domain.UnitMode(m.unitMode.Value()))
	}

	if a == m.draft {
		return nil
	}
	m.draft = a
	return func() tea.Msg { return tuimsg.AssumptionsEditedMsg{Assumptions: a} }
}

// View renders the editor
func (m *AssumptionsModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)

	profile := calculation.HealthProfile(m.draft)
	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	settings := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Settings"),
		m.age.Render(),
		"",
		m.health.Render(),
		"",
		m.eating.Render(),
		"",
		muted.Render(fmt.Sprintf("Projected health: %s — %s", profile.Label, profile.Description)),
		muted.Render(fmt.Sprintf("Adjusted life expectancy: %d", calculation.AdjustedLifeExpectancyAge(m.draft))),
	)

	assumptions := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Assumptions"),
		m.lifeExpectancy.Render(),
		"",
		m.coffees.Render(),
		"",
		m.workdays.Render(),
		"",
		m.optimism.Render(),
		"",
		m.tone.Render(),
		"",
		m.unitMode.Render(),
	)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2)

	var body string
	if m.width == 0 || m.width >= 120 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel.Render(settings), " ", panel.Render(assumptions))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, panel.Render(settings), panel.Render(assumptions))
	}

	var content strings.Builder
	content.WriteString(body)
	content.WriteString("\n")
	content.WriteString(renderAssumptionsHelp())
	return content.String()
}

func renderAssumptionsHelp() string {
	return tuistyles.HelpDescStyle.Render("↑/↓ select • ←/→ adjust • PgUp/PgDn ±10 • r reset assumptions • R reset everything • ESC back")
}
