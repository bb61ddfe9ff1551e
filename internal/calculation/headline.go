package calculation

import (
	"math"

	"github.com/rgehrsitz/countdown/internal/domain"
)

// WeeksPerYear is the single weeks-per-year convention used by every counter
const WeeksPerYear = 52

// Bounds of the adjusted life expectancy age
const (
	MinAdjustedLifeExpectancy = 50
	MaxAdjustedLifeExpectancy = 105
)

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// roundHalfUp rounds .5 toward positive infinity
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// healthDeltaYears shifts life expectancy by 2 years per health step away from 3
func healthDeltaYears(healthCondition int) float64 {
	return (clamp(float64(healthCondition), 1, 5) - 3) * 2
}

// eatingHabitsDeltaYears shifts life expectancy by 1.5 years per eating step away from 3
func eatingHabitsDeltaYears(eatingHabits int) float64 {
	return (clamp(float64(eatingHabits), 1, 5) - 3) * 1.5
}

// AdjustedLifeExpectancyAge applies the health and eating deltas to the band's
// base age, rounds and clamps to [50, 105]
func AdjustedLifeExpectancyAge(a domain.Assumptions) int {
	a = a.Normalize()
	adjusted := float64(a.LifeExpectancy.Age()) +
		healthDeltaYears(a.HealthCondition) +
		eatingHabitsDeltaYears(a.EatingHabits)
	return int(clamp(roundHalfUp(adjusted), MinAdjustedLifeExpectancy, MaxAdjustedLifeExpectancy))
}

// RemainingYears is max(0, adjusted expectancy - age)
func RemainingYears(a domain.Assumptions) int {
	a = a.Normalize()
	return max(0, AdjustedLifeExpectancyAge(a)-a.Age)
}

// RemainingWeeks is floor(remainingYears × 52)
func RemainingWeeks(a domain.Assumptions) int {
	return RemainingYears(a) * WeeksPerYear
}

// SundaysRemaining is one Sunday per remaining week
func SundaysRemaining(a domain.Assumptions) int {
	return RemainingWeeks(a)
}

// YearsRemaining is the yearly-unit rendition of the Sundays counter
func YearsRemaining(a domain.Assumptions) int {
	return RemainingYears(a)
}

// CoffeesLeft is remaining weeks × 7 days × coffees per day
func CoffeesLeft(a domain.Assumptions) int {
	a = a.Normalize()
	return RemainingWeeks(a) * 7 * max(0, a.CoffeesPerDay)
}

// WorkdaysRemaining is remaining weeks × workdays per week
func WorkdaysRemaining(a domain.Assumptions) int {
	a = a.Normalize()
	return RemainingWeeks(a) * max(0, a.WorkdaysPerWeek)
}

// NextWeekStartRemaining is the share of remaining weeks postponed by a lack
// of optimism: floor(weeks × (1 - optimism/10))
func NextWeekStartRemaining(a domain.Assumptions) int {
	a = a.Normalize()
	optimism := clamp(float64(a.Optimism)/10, 0, 1)
	return max(0, int(math.Floor(float64(RemainingWeeks(a))*(1-optimism))))
}

// ValueForKind returns the headline counter for kind; unknown kinds are 0
func ValueForKind(kind domain.CounterKind, a domain.Assumptions) int {
	switch kind {
	case domain.CounterCoffees:
		return CoffeesLeft(a)
	case domain.CounterSundays:
		return SundaysRemaining(a)
	case domain.CounterWorkdays:
		return WorkdaysRemaining(a)
	case domain.CounterNextWeek:
		return NextWeekStartRemaining(a)
	default:
		return 0
	}
}

// DisplayedValue is ValueForKind with the unit mode applied: the Sundays
// counter switches to whole years in yearly mode
func DisplayedValue(kind domain.CounterKind, a domain.Assumptions) int {
	if kind == domain.CounterSundays && a.Normalize().UnitMode == domain.UnitModeYearly {
		return YearsRemaining(a)
	}
	return ValueForKind(kind, a)
}

var healthProfiles = map[int]domain.HealthProfile{
	1: {Label: "fragile", Description: "Expect lower stamina and slower recovery."},
	2: {Label: "strained", Description: "Functional, but with more bad days than good."},
	3: {Label: "steady", Description: "Average resilience with manageable dips."},
	4: {Label: "strong", Description: "Reliable energy with occasional wobble."},
	5: {Label: "excellent", Description: "High resilience and faster bounce-back."},
}

// HealthProfile labels the rounded mean of the health and eating sliders
func HealthProfile(a domain.Assumptions) domain.HealthProfile {
	a = a.Normalize()
	score := roundHalfUp(float64(a.HealthCondition+a.EatingHabits) / 2)
	return healthProfiles[int(clamp(score, 1, 5))]
}
