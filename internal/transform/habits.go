package transform

import (
	"fmt"

	"github.com/rgehrsitz/countdown/internal/domain"
)

func checkRange(name, field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return NewTransformError(name, "validate",
			fmt.Sprintf("%s must be between %d and %d, got %d", field, lo, hi, value), nil)
	}
	return nil
}

// AgeBy moves the model forward (or back) in time
type AgeBy struct {
	Years int
}

func (ab *AgeBy) Name() string { return "age_by" }

func (ab *AgeBy) Description() string {
	if ab.Years < 0 {
		return fmt.Sprintf("Rewind %d years", -ab.Years)
	}
	return fmt.Sprintf("Fast-forward %d years", ab.Years)
}

func (ab *AgeBy) Validate(base domain.Assumptions) error {
	return checkRange(ab.Name(), "age", base.Age+ab.Years, domain.MinAge, domain.MaxAge)
}

func (ab *AgeBy) Apply(base domain.Assumptions) (domain.Assumptions, error) {
	return base.WithAge(base.Age + ab.Years), nil
}

// SetCoffees changes the daily coffee habit
type SetCoffees struct {
	PerDay int
}

func (sc *SetCoffees) Name() string { return "set_coffees" }

func (sc *SetCoffees) Description() string {
	if sc.PerDay == 0 {
		return "Quit coffee"
	}
	return fmt.Sprintf("Drink %d coffees a day", sc.PerDay)
}

func (sc *SetCoffees) Validate(base domain.Assumptions) error {
	return checkRange(sc.Name(), "coffees per day", sc.PerDay, domain.MinCoffeesPerDay, domain.MaxCoffeesPerDay)
}

func (sc *SetCoffees) Apply(base domain.Assumptions) (domain.Assumptions, error) {
	return base.WithCoffeesPerDay(sc.PerDay), nil
}

// SetWorkdays changes the working week
type SetWorkdays struct {
	PerWeek int
}

func (sw *SetWorkdays) Name() string { return "set_workdays" }

func (sw *SetWorkdays) Description() string {
	if sw.PerWeek == 0 {
		return "Stop working"
	}
	return fmt.Sprintf("Work %d days a week", sw.PerWeek)
}

func (sw *SetWorkdays) Validate(base domain.Assumptions) error {
	return checkRange(sw.Name(), "workdays per week", sw.PerWeek, domain.MinWorkdaysPerWeek, domain.MaxWorkdaysPerWeek)
}

func (sw *SetWorkdays) Apply(base domain.Assumptions) (domain.Assumptions, error) {
	return base.WithWorkdaysPerWeek(sw.PerWeek), nil
}

// AdjustHealth moves the health condition by Steps
type AdjustHealth struct {
	Steps int
}

func (ah *AdjustHealth) Name() string { return "adjust_health" }

func (ah *AdjustHealth) Description() string {
	return fmt.Sprintf("Health condition %+d", ah.Steps)
}

func (ah *AdjustHealth) Validate(base domain.Assumptions) error {
	return checkRange(ah.Name(), "health condition", base.HealthCondition+ah.Steps,
		domain.MinHealthCondition, domain.MaxHealthCondition)
}

func (ah *AdjustHealth) Apply(base domain.Assumptions) (domain.Assumptions, error) {
	return base.WithHealthCondition(base.HealthCondition + ah.Steps), nil
}

// AdjustEating moves the eating habits by Steps
type AdjustEating struct {
	Steps int
}

func (ae *AdjustEating) Name() string { return "adjust_eating" }

func (ae *AdjustEating) Description() string {
	return fmt.Sprintf("Eating habits %+d", ae.Steps)
}

func (ae *AdjustEating) Validate(base domain.Assumptions) error {
	return checkRange(ae.Name(), "eating habits", base.EatingHabits+ae.Steps,
		domain.MinEatingHabits, domain.MaxEatingHabits)
}

func (ae *AdjustEating) Apply(base domain.Assumptions) (domain.Assumptions, error) {
	return base.WithEatingHabits(base.EatingHabits + ae.Steps), nil
}

// SetOptimism replaces the optimism score
type SetOptimism struct {
	Level int
}

func (so *SetOptimism) Name() string { return "set_optimism" }

func (so *SetOptimism) Description() string {
	return fmt.Sprintf("Optimism at %d/10", so.Level)
}

func (so *SetOptimism) Validate(base domain.Assumptions) error {
	return checkRange(so.Name(), "optimism", so.Level, domain.MinOptimism, domain.MaxOptimism)
}

func (so *SetOptimism) Apply(base domain.Assumptions) (domain.Assumptions, error) {
	return base.WithOptimism(so.Level), nil
}

// SetLifeExpectancy switches the life expectancy preset
type SetLifeExpectancy struct {
	Preset domain.LifeExpectancy
}

func (sl *SetLifeExpectancy) Name() string { return "set_life_expectancy" }

func (sl *SetLifeExpectancy) Description() string {
	return fmt.Sprintf("Life expectancy %s (%d)", sl.Preset, sl.Preset.Age())
}

func (sl *SetLifeExpectancy) Validate(base domain.Assumptions) error {
	if !sl.Preset.Valid() {
		return NewTransformError(sl.Name(), "validate", fmt.Sprintf("unknown preset %q", sl.Preset), nil)
	}
	return nil
}

func (sl *SetLifeExpectancy) Apply(base domain.Assumptions) (domain.Assumptions, error) {
	return base.WithLifeExpectancy(sl.Preset), nil
}
