package calculation

import (
	"testing"

	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/stretchr/testify/assert"
)

func model(mutators ...func(*domain.Assumptions)) domain.Assumptions {
	a := domain.DefaultAssumptions()
	for _, m := range mutators {
		m(&a)
	}
	return a
}

// everyModel walks a coarse grid over the whole legal input domain
func everyModel(fn func(domain.Assumptions)) {
	for _, le := range domain.LifeExpectancies() {
		for age := 0; age <= domain.MaxAge; age += 7 {
			for health := domain.MinHealthCondition; health <= domain.MaxHealthCondition; health++ {
				for eating := domain.MinEatingHabits; eating <= domain.MaxEatingHabits; eating += 2 {
					for coffees := 0; coffees <= domain.MaxCoffeesPerDay; coffees += 3 {
						for workdays := 0; workdays <= domain.MaxWorkdaysPerWeek; workdays += 7 {
							for optimism := 0; optimism <= domain.MaxOptimism; optimism += 5 {
								fn(domain.Assumptions{
									Age: age, LifeExpectancy: le, HealthCondition: health, EatingHabits: eating,
									CoffeesPerDay: coffees, WorkdaysPerWeek: workdays, Optimism: optimism,
									Tone: domain.ToneDry, UnitMode: domain.UnitModeWeekly,
								})
							}
						}
					}
				}
			}
		}
	}
}

func TestHeadline_DefaultScenario(t *testing.T) {
	a := domain.Assumptions{
		Age: 30, LifeExpectancy: domain.LifeExpectancyAverage, CoffeesPerDay: 2, WorkdaysPerWeek: 5,
		Optimism: 5, HealthCondition: 3, EatingHabits: 3,
	}

	assert.Equal(t, 80, AdjustedLifeExpectancyAge(a))
	assert.Equal(t, 50, RemainingYears(a))
	assert.Equal(t, 2600, RemainingWeeks(a))
	assert.Equal(t, 2600, SundaysRemaining(a))
	assert.Equal(t, 36400, CoffeesLeft(a))
	assert.Equal(t, 13000, WorkdaysRemaining(a))
	assert.Equal(t, 1300, NextWeekStartRemaining(a))
	assert.Equal(t, 50, YearsRemaining(a))
}

func TestHeadline_PastExpectancyIsZero(t *testing.T) {
	a := model(func(a *domain.Assumptions) {
		a.Age = 80
		a.LifeExpectancy = domain.LifeExpectancyShort
	})

	assert.Equal(t, 0, RemainingYears(a))
	assert.Equal(t, 0, RemainingWeeks(a))
	assert.Equal(t, 0, SundaysRemaining(a))
	assert.Equal(t, 0, CoffeesLeft(a))
	assert.Equal(t, 0, WorkdaysRemaining(a))
	assert.Equal(t, 0, NextWeekStartRemaining(a))
}

func TestAdjustedLifeExpectancyAge(t *testing.T) {
	tests := []struct {
		name     string
		le       domain.LifeExpectancy
		health   int
		eating   int
		expected int
	}{
		{"neutral short", domain.LifeExpectancyShort, 3, 3, 70},
		{"neutral optimistic", domain.LifeExpectancyOptimistic, 3, 3, 90},
		{"half year rounds up", domain.LifeExpectancyAverage, 3, 4, 82},
		{"negative half year rounds up", domain.LifeExpectancyAverage, 3, 2, 79},
		{"worst case", domain.LifeExpectancyShort, 1, 1, 63},
		{"best case", domain.LifeExpectancyOptimistic, 5, 5, 97},
		{"health only", domain.LifeExpectancyAverage, 5, 3, 84},
		{"out of range sliders are re-clamped", domain.LifeExpectancyAverage, 9, -3, 81},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := model(func(a *domain.Assumptions) {
				a.LifeExpectancy = tt.le
				a.HealthCondition = tt.health
				a.EatingHabits = tt.eating
			})
			assert.Equal(t, tt.expected, AdjustedLifeExpectancyAge(a))
		})
	}
}

func TestHeadline_NonNegativeOverDomain(t *testing.T) {
	everyModel(func(a domain.Assumptions) {
		expectancy := AdjustedLifeExpectancyAge(a)
		assert.GreaterOrEqual(t, expectancy, MinAdjustedLifeExpectancy)
		assert.LessOrEqual(t, expectancy, MaxAdjustedLifeExpectancy)
		for _, kind := range domain.CounterKinds() {
			assert.GreaterOrEqual(t, ValueForKind(kind, a), 0, "%s for %+v", kind, a)
		}
	})
}

func TestRemainingWeeks_Monotonic(t *testing.T) {
	t.Run("non-increasing in age", func(t *testing.T) {
		prev := RemainingWeeks(model(func(a *domain.Assumptions) { a.Age = 0 }))
		for age := 1; age <= domain.MaxAge; age++ {
			weeks := RemainingWeeks(model(func(a *domain.Assumptions) { a.Age = age }))
			assert.LessOrEqual(t, weeks, prev, "age %d", age)
			prev = weeks
		}
	})

	t.Run("non-decreasing in adjusted expectancy", func(t *testing.T) {
		prevExpectancy, prevWeeks := 0, -1
		for _, le := range domain.LifeExpectancies() {
			for health := 1; health <= 5; health++ {
				a := model(func(a *domain.Assumptions) {
					a.LifeExpectancy = le
					a.HealthCondition = health
				})
				expectancy, weeks := AdjustedLifeExpectancyAge(a), RemainingWeeks(a)
				if expectancy >= prevExpectancy {
					assert.GreaterOrEqual(t, weeks, prevWeeks)
				}
				prevExpectancy, prevWeeks = expectancy, weeks
			}
		}
	})
}

func TestCoffeesLeft_ZeroCoffees(t *testing.T) {
	everyModel(func(a domain.Assumptions) {
		a.CoffeesPerDay = 0
		assert.Equal(t, 0, CoffeesLeft(a))
	})
	assert.Equal(t, 0, CoffeesLeft(model(func(a *domain.Assumptions) { a.CoffeesPerDay = -3 })))
}

func TestNextWeekStartRemaining_OptimismExtremes(t *testing.T) {
	everyModel(func(a domain.Assumptions) {
		a.Optimism = 10
		assert.Equal(t, 0, NextWeekStartRemaining(a))

		a.Optimism = 0
		assert.Equal(t, RemainingWeeks(a), NextWeekStartRemaining(a))
	})
}

func TestWorkdaysRemaining(t *testing.T) {
	a := model(func(a *domain.Assumptions) { a.WorkdaysPerWeek = 0 })
	assert.Equal(t, 0, WorkdaysRemaining(a))

	a = model(func(a *domain.Assumptions) { a.WorkdaysPerWeek = 7 })
	assert.Equal(t, 2600*7, WorkdaysRemaining(a))
}

func TestValueForKind(t *testing.T) {
	a := domain.DefaultAssumptions()

	assert.Equal(t, 36400, ValueForKind(domain.CounterCoffees, a))
	assert.Equal(t, 2600, ValueForKind(domain.CounterSundays, a))
	assert.Equal(t, 13000, ValueForKind(domain.CounterWorkdays, a))
	assert.Equal(t, 1300, ValueForKind(domain.CounterNextWeek, a))
	assert.Equal(t, 0, ValueForKind("naps", a))
}

func TestDisplayedValue_UnitMode(t *testing.T) {
	weekly := domain.DefaultAssumptions()
	yearly := weekly.WithUnitMode(domain.UnitModeYearly)

	assert.Equal(t, 2600, DisplayedValue(domain.CounterSundays, weekly))
	assert.Equal(t, 50, DisplayedValue(domain.CounterSundays, yearly))
	assert.Equal(t, CoffeesLeft(weekly), DisplayedValue(domain.CounterCoffees, yearly), "unit mode only affects the Sundays display")
}

func TestToneNeverChangesNumbers(t *testing.T) {
	base := domain.DefaultAssumptions()
	for _, tone := range domain.Tones() {
		a := base.WithTone(tone)
		for _, kind := range domain.CounterKinds() {
			assert.Equal(t, ValueForKind(kind, base), ValueForKind(kind, a))
		}
	}
}

func TestHealthProfile(t *testing.T) {
	tests := []struct {
		health, eating int
		label          string
	}{
		{1, 1, "fragile"},
		{1, 2, "strained"},
		{3, 3, "steady"},
		{4, 3, "strong"},
		{5, 4, "excellent"},
		{5, 5, "excellent"},
	}

	for _, tt := range tests {
		a := model(func(a *domain.Assumptions) {
			a.HealthCondition = tt.health
			a.EatingHabits = tt.eating
		})
		profile := HealthProfile(a)
		assert.Equal(t, tt.label, profile.Label, "health=%d eating=%d", tt.health, tt.eating)
		assert.NotEmpty(t, profile.Description)
	}
}
