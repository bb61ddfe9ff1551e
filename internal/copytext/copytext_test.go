package copytext

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSubtext_DefaultModel(t *testing.T) {
	a := domain.DefaultAssumptions()

	assert.Equal(t, "Assuming 2 coffees/day until age 80.", Subtext(domain.CounterCoffees, a))
	assert.Equal(t, "Assuming weeks until age 80, one Sunday each.", Subtext(domain.CounterSundays, a))
	assert.Equal(t, "Assuming 5 workdays/week until age 80.", Subtext(domain.CounterWorkdays, a))
	assert.Equal(t, "Assuming optimism 5/10 delays the start.", Subtext(domain.CounterNextWeek, a))
	assert.Empty(t, Subtext("naps", a))
}

func TestSubtext_TonePrefixes(t *testing.T) {
	tests := []struct {
		tone     domain.Tone
		expected string
	}{
		{domain.ToneDry, "Assuming 2 coffees/day until age 80."},
		{domain.ToneBleak, "Assuming, grimly, 2 coffees/day until age 80."},
		{domain.ToneBureaucratic, "Per current policy, assuming 2 coffees/day until age 80."},
		{domain.ToneCosmic, "Assuming the universe permits 2 coffees/day until age 80."},
	}

	for _, tt := range tests {
		t.Run(string(tt.tone), func(t *testing.T) {
			a := domain.DefaultAssumptions().WithTone(tt.tone)
			assert.Equal(t, tt.expected, Subtext(domain.CounterCoffees, a))
		})
	}
}

func TestSubtext_UsesAdjustedExpectancy(t *testing.T) {
	a := domain.DefaultAssumptions()
	a.HealthCondition = 5
	a.EatingHabits = 5

	assert.Equal(t, "Assuming weeks until age 87, one Sunday each.", Subtext(domain.CounterSundays, a))
}

func TestTonePrefix_UnknownToneReadsDry(t *testing.T) {
	assert.Equal(t, "Assuming", TonePrefix("sardonic"))
}

func TestDetailsText(t *testing.T) {
	for _, kind := range domain.CounterKinds() {
		assert.NotEmpty(t, Title(kind), kind)
		assert.NotEmpty(t, HowCalculated(kind), kind)
		assert.True(t, strings.HasPrefix(Formula(kind), "(adjustedLifeExpectancyAge - age) × 52"), kind)
		assert.True(t, strings.HasPrefix(HowCalculated(kind), Title(kind)), "explanation opens with the title for %s", kind)
	}

	assert.Equal(t, "(adjustedLifeExpectancyAge - age) × 52 × (1 - optimism/10)", Formula(domain.CounterNextWeek))
	assert.Empty(t, HowCalculated("naps"))
	assert.Empty(t, Formula("naps"))
}

func TestDisplayTitle(t *testing.T) {
	weekly := domain.DefaultAssumptions()
	yearly := weekly.WithUnitMode(domain.UnitModeYearly)

	assert.Equal(t, "Sundays remaining", DisplayTitle(domain.CounterSundays, weekly))
	assert.Equal(t, "Years remaining", DisplayTitle(domain.CounterSundays, yearly))
	assert.Equal(t, "Coffees left", DisplayTitle(domain.CounterCoffees, yearly))
}

func TestAssumptionsUsed(t *testing.T) {
	assert.Equal(t, []string{
		"Age: 30",
		"Life expectancy: average",
		"Health condition: 3/5",
		"Eating habits: 3/5",
		"Coffees/day: 2",
		"Workdays/week: 5",
		"Optimism: 5/10",
	}, AssumptionsUsed(domain.DefaultAssumptions()))
}

func TestMicrocopy(t *testing.T) {
	assert.Equal(t, "This is not advice. Just math.", Microcopy(domain.ToneDry).Disclaimer)
	assert.Equal(t, "Provide inputs to generate outputs.", Microcopy(domain.ToneBureaucratic).Prompt)
	assert.Equal(t, "No motivation. Just a ledger.", Microcopy(domain.ToneCosmic).About)
	assert.Equal(t, Microcopy(domain.ToneDry), Microcopy("sardonic"))

	for _, tone := range domain.Tones() {
		m := Microcopy(tone)
		assert.NotEmpty(t, m.Prompt, tone)
		assert.NotEmpty(t, m.Disclaimer, tone)
		assert.NotEmpty(t, m.About, tone)
	}
}

func TestSnapshotLine(t *testing.T) {
	s := domain.Snapshot{Date: "3/14/2026", Sundays: 2600, Coffees: 36400}
	assert.Equal(t, "3/14/2026 — 2600 Sundays, 36400 coffees", SnapshotLine(s))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "36,400", FormatCount(36400))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
}
