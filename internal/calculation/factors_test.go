package calculation

import (
	"math"
	"testing"

	"github.com/rgehrsitz/countdown/internal/catalog"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const factorDelta = 1e-9

func TestFactors_DefaultModel(t *testing.T) {
	fs := Factors(domain.DefaultAssumptions())

	assert.InDelta(t, 0.9, fs.HealthCondition, factorDelta)
	assert.InDelta(t, 0.85, fs.EatingHabits, factorDelta)
	assert.InDelta(t, 0.765, fs.Lifestyle, factorDelta)
	assert.InDelta(t, (0.6+(2.0/6)*0.5+(5.0/7)*0.3)*0.85, fs.Habits, factorDelta)
	assert.InDelta(t, 1.0, fs.Optimism, factorDelta)
	assert.InDelta(t, 0.98, fs.Age, factorDelta)
}

func TestFactors_ClampBoundsReached(t *testing.T) {
	tests := []struct {
		name     string
		factor   func(domain.Assumptions) float64
		model    domain.Assumptions
		expected float64
	}{
		{
			name:   "lifestyle floor",
			factor: LifestyleFactor,
			model: model(func(a *domain.Assumptions) {
				a.WorkdaysPerWeek, a.CoffeesPerDay, a.HealthCondition = 0, 0, 1
			}),
			expected: LifestyleBounds.Min,
		},
		{
			name:   "habits floor",
			factor: HabitsFactor,
			model: model(func(a *domain.Assumptions) {
				a.WorkdaysPerWeek, a.CoffeesPerDay, a.EatingHabits = 0, 0, 1
			}),
			expected: HabitsBounds.Min,
		},
		{
			name:     "age floor",
			factor:   AgeFactor,
			model:    model(func(a *domain.Assumptions) { a.Age = 120 }),
			expected: AgeBounds.Min,
		},
		{
			name:     "age ceiling",
			factor:   AgeFactor,
			model:    model(func(a *domain.Assumptions) { a.Age = 0 }),
			expected: AgeBounds.Max,
		},
		{
			name:     "optimism floor",
			factor:   OptimismFactor,
			model:    model(func(a *domain.Assumptions) { a.Optimism = 0 }),
			expected: OptimismBounds.Min,
		},
		{
			name:     "optimism ceiling",
			factor:   OptimismFactor,
			model:    model(func(a *domain.Assumptions) { a.Optimism = 10 }),
			expected: OptimismBounds.Max,
		},
		{
			name:     "health at worst slider",
			factor:   HealthConditionFactor,
			model:    model(func(a *domain.Assumptions) { a.HealthCondition = 1 }),
			expected: 0.8,
		},
		{
			name:     "eating at best slider",
			factor:   EatingHabitsFactor,
			model:    model(func(a *domain.Assumptions) { a.EatingHabits = 5 }),
			expected: 0.97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.factor(tt.model), factorDelta)
		})
	}
}

func TestFactors_StayInsideBoundsOverDomain(t *testing.T) {
	within := func(t *testing.T, name string, v float64, b FactorBounds, a domain.Assumptions) {
		assert.GreaterOrEqual(t, v, b.Min, "%s below bound for %+v", name, a)
		assert.LessOrEqual(t, v, b.Max, "%s above bound for %+v", name, a)
	}

	everyModel(func(a domain.Assumptions) {
		fs := Factors(a)
		within(t, "health", fs.HealthCondition, HealthConditionBounds, a)
		within(t, "eating", fs.EatingHabits, EatingHabitsBounds, a)
		within(t, "lifestyle", fs.Lifestyle, LifestyleBounds, a)
		within(t, "habits", fs.Habits, HabitsBounds, a)
		within(t, "optimism", fs.Optimism, OptimismBounds, a)
		within(t, "age", fs.Age, AgeBounds, a)
	})
}

func TestFactors_OutOfDomainInputsAreReclamped(t *testing.T) {
	wild := domain.Assumptions{Age: -50, HealthCondition: 40, EatingHabits: -9, CoffeesPerDay: 99, WorkdaysPerWeek: 99, Optimism: 1000}

	assert.Equal(t, Factors(wild.Normalize()), Factors(wild))
}

func TestFactorSet_ForTag(t *testing.T) {
	fs := FactorSet{Lifestyle: 1.1, Habits: 0.9, Optimism: 1.2, Age: 0.8, HealthCondition: 0.7, EatingHabits: 0.6}

	assert.Equal(t, 0.8, fs.ForTag(domain.TagAge))
	assert.Equal(t, 1.1, fs.ForTag(domain.TagLifestyle))
	assert.Equal(t, 0.9, fs.ForTag(domain.TagHabits))
	assert.Equal(t, 1.2, fs.ForTag(domain.TagOptimism))
	// health and nutrition tags have no factor function of their own
	assert.Equal(t, 1.0, fs.ForTag(domain.TagHealth))
	assert.Equal(t, 1.0, fs.ForTag(domain.TagNutrition))
}

func TestValueOf(t *testing.T) {
	a := domain.DefaultAssumptions()
	fs := Factors(a)

	t.Run("weekly item", func(t *testing.T) {
		item, ok := catalog.Default().ByID("matches-burned")
		require.True(t, ok)

		weeks := float64(RemainingWeeks(a))
		expected := int(math.Floor(weeks * item.Rate.PerWeek * (fs.Lifestyle * fs.Habits)))
		assert.Equal(t, 2600.0, weeks)
		assert.Equal(t, expected, ValueOf(a, item))
	})

	t.Run("yearly item with age", func(t *testing.T) {
		item, ok := catalog.Default().ByID("weekends-underestimated")
		require.True(t, ok)

		years := float64(RemainingYears(a))
		expected := int(math.Floor(years * item.Rate.PerYear * (fs.Age * fs.Lifestyle)))
		assert.Equal(t, 50.0, years)
		assert.Equal(t, expected, ValueOf(a, item))
	})

	t.Run("unknown id is worth zero", func(t *testing.T) {
		item := domain.LifeAssumption{ID: "unicorns-ridden", AffectedBy: []domain.FactorTag{domain.TagHabits}, Rate: domain.Rate{PerWeek: 100}}
		assert.Equal(t, 0, ValueOf(a, item), "rate comes from the table, not the item")
	})

	t.Run("nothing left to count", func(t *testing.T) {
		old := model(func(a *domain.Assumptions) {
			a.Age = 95
			a.LifeExpectancy = domain.LifeExpectancyShort
		})
		for _, item := range catalog.Default().All() {
			assert.Equal(t, 0, ValueOf(old, item), item.ID)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		for _, item := range catalog.Default().All() {
			first := ValueOf(a, item)
			assert.Equal(t, first, ValueOf(a, item), item.ID)
			assert.GreaterOrEqual(t, first, 0, item.ID)
		}
	})
}

func TestCombinedFactor_HealthAndNutritionTagsContributeOne(t *testing.T) {
	a := model(func(a *domain.Assumptions) {
		a.HealthCondition = 1
		a.EatingHabits = 5
	})
	plain := domain.LifeAssumption{ID: "x", AffectedBy: []domain.FactorTag{domain.TagHabits}}
	tagged := domain.LifeAssumption{ID: "x", AffectedBy: []domain.FactorTag{domain.TagHabits, domain.TagHealth, domain.TagNutrition}}

	// The health and eating sliders still reach items through the lifestyle
	// and habits factors, but the bare tags add no multiplier of their own.
	assert.Equal(t, CombinedFactor(a, plain), CombinedFactor(a, tagged))
	assert.Equal(t, 1.0, CombinedFactor(a, domain.LifeAssumption{AffectedBy: []domain.FactorTag{domain.TagHealth}}))
}

func TestCombinedFactor_TagOrderAndDuplicatesIgnored(t *testing.T) {
	a := model(func(a *domain.Assumptions) { a.Age = 61 })
	ab := domain.LifeAssumption{AffectedBy: []domain.FactorTag{domain.TagLifestyle, domain.TagAge}}
	ba := domain.LifeAssumption{AffectedBy: []domain.FactorTag{domain.TagAge, domain.TagLifestyle, domain.TagAge}}

	assert.Equal(t, CombinedFactor(a, ab), CombinedFactor(a, ba))
	assert.InDelta(t, AgeFactor(a)*LifestyleFactor(a), CombinedFactor(a, ab), factorDelta)
}

func TestBaseCount(t *testing.T) {
	a := domain.DefaultAssumptions()

	assert.InDelta(t, 2600*0.5, BaseCount(a, domain.Rate{PerWeek: 0.5}), factorDelta)
	assert.InDelta(t, 50*2.0, BaseCount(a, domain.Rate{PerYear: 2}), factorDelta)
	assert.InDelta(t, 2600*3.0, BaseCount(a, domain.Rate{PerWeek: 3, PerYear: 1000}), factorDelta, "weekly rate wins")
	assert.Equal(t, 0.0, BaseCount(a, domain.Rate{}))
}
