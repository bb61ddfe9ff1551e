// Package copytext holds every user-facing string of the countdown: counter
// titles, tone-flavored subtext, the details panel text and the tone
// microcopy. Numbers never depend on anything in here.
package copytext

import (
	"fmt"

	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/domain"
)

// Fixed strings
const (
	DetailsFooter      = "Estimates are fictional. Feelings are real."
	About              = "A one-page meditation on the arithmetic of ordinary habits. No tracking, no judgment. Just the numbers."
	AssumptionsUpdated = "Assumptions updated."
	NoSnapshots        = "No snapshots yet."
	YearsRemaining     = "Years remaining"
)

var tonePrefix = map[domain.Tone]string{
	domain.ToneDry:          "Assuming",
	domain.ToneBleak:        "Assuming, grimly,",
	domain.ToneBureaucratic: "Per current policy, assuming",
	domain.ToneCosmic:       "Assuming the universe permits",
}

// TonePrefix returns the sentence opener for a tone; unknown tones read dry
func TonePrefix(tone domain.Tone) string {
	if p, ok := tonePrefix[tone]; ok {
		return p
	}
	return tonePrefix[domain.ToneDry]
}

var titles = map[domain.CounterKind]string{
	domain.CounterCoffees:  "Coffees left",
	domain.CounterSundays:  "Sundays remaining",
	domain.CounterWorkdays: "Workdays remaining",
	domain.CounterNextWeek: "Next week I’ll start",
}

// Title returns the card title of a counter
func Title(kind domain.CounterKind) string {
	return titles[kind]
}

// DisplayTitle is Title with the unit mode applied: yearly mode relabels the
// Sundays card.
func DisplayTitle(kind domain.CounterKind, a domain.Assumptions) string {
	if kind == domain.CounterSundays && a.Normalize().UnitMode == domain.UnitModeYearly {
		return YearsRemaining
	}
	return Title(kind)
}

// Subtext is the one-line explanation under a counter card
func Subtext(kind domain.CounterKind, a domain.Assumptions) string {
	a = a.Normalize()
	prefix := TonePrefix(a.Tone)
	expectancy := calculation.AdjustedLifeExpectancyAge(a)

	switch kind {
	case domain.CounterCoffees:
		return fmt.Sprintf("%s %d coffees/day until age %d.", prefix, a.CoffeesPerDay, expectancy)
	case domain.CounterSundays:
		return fmt.Sprintf("%s weeks until age %d, one Sunday each.", prefix, expectancy)
	case domain.CounterWorkdays:
		return fmt.Sprintf("%s %d workdays/week until age %d.", prefix, a.WorkdaysPerWeek, expectancy)
	case domain.CounterNextWeek:
		return fmt.Sprintf("%s optimism %d/10 delays the start.", prefix, a.Optimism)
	default:
		return ""
	}
}

// HowCalculated is the prose explanation shown in the details panel
func HowCalculated(kind domain.CounterKind) string {
	switch kind {
	case domain.CounterCoffees:
		return "Coffees left is the total remaining weeks (adjusted by health and eating habits) multiplied by 7 days and your coffees per day."
	case domain.CounterSundays:
		return "Sundays remaining is the number of weeks left until your adjusted life expectancy."
	case domain.CounterWorkdays:
		return "Workdays remaining is the adjusted remaining weeks multiplied by your workdays per week."
	case domain.CounterNextWeek:
		return "Next week I’ll start is the portion of adjusted remaining weeks postponed by your optimism score."
	default:
		return ""
	}
}

// Formula is the symbolic formula shown in the details panel
func Formula(kind domain.CounterKind) string {
	switch kind {
	case domain.CounterCoffees:
		return "(adjustedLifeExpectancyAge - age) × 52 × 7 × coffeesPerDay"
	case domain.CounterSundays:
		return "(adjustedLifeExpectancyAge - age) × 52"
	case domain.CounterWorkdays:
		return "(adjustedLifeExpectancyAge - age) × 52 × workdaysPerWeek"
	case domain.CounterNextWeek:
		return "(adjustedLifeExpectancyAge - age) × 52 × (1 - optimism/10)"
	default:
		return ""
	}
}

// AssumptionsUsed lists the inputs behind every counter
func AssumptionsUsed(a domain.Assumptions) []string {
	a = a.Normalize()
	return []string{
		fmt.Sprintf("Age: %d", a.Age),
		fmt.Sprintf("Life expectancy: %s", a.LifeExpectancy),
		fmt.Sprintf("Health condition: %d/5", a.HealthCondition),
		fmt.Sprintf("Eating habits: %d/5", a.EatingHabits),
		fmt.Sprintf("Coffees/day: %d", a.CoffeesPerDay),
		fmt.Sprintf("Workdays/week: %d", a.WorkdaysPerWeek),
		fmt.Sprintf("Optimism: %d/10", a.Optimism),
	}
}

// SnapshotLine renders a stored snapshot for the snapshot list
func SnapshotLine(s domain.Snapshot) string {
	return fmt.Sprintf("%s — %d Sundays, %d coffees", s.Date, s.Sundays, s.Coffees)
}

// ToneMicrocopy is the tone-dependent chrome around the counters
type ToneMicrocopy struct {
	Prompt     string
	Disclaimer string
	About      string
}

var microcopy = map[domain.Tone]ToneMicrocopy{
	domain.ToneDry: {
		Prompt:     "Set your assumptions.",
		Disclaimer: "This is not advice. Just math.",
		About:      "No motivation. Just math.",
	},
	domain.ToneBleak: {
		Prompt:     "Set your assumptions. The numbers will comply.",
		Disclaimer: "This is not advice. It is arithmetic.",
		About:      "No motivation. Just arithmetic.",
	},
	domain.ToneBureaucratic: {
		Prompt:     "Provide inputs to generate outputs.",
		Disclaimer: "This is not advice. It is a calculation.",
		About:      "No motivation. Just calculation.",
	},
	domain.ToneCosmic: {
		Prompt:     "Set your assumptions. The ledger unfolds.",
		Disclaimer: "This is not advice. It is a ledger.",
		About:      "No motivation. Just a ledger.",
	},
}

// Microcopy returns the chrome for a tone; unknown tones read dry
func Microcopy(tone domain.Tone) ToneMicrocopy {
	if m, ok := microcopy[tone]; ok {
		return m
	}
	return microcopy[domain.ToneDry]
}
