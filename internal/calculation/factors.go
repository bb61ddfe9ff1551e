package calculation

import "github.com/rgehrsitz/countdown/internal/domain"

// FactorBounds is the closed interval a factor is clamped into
type FactorBounds struct {
	Min float64
	Max float64
}

// Published clamp bounds of each factor
var (
	HealthConditionBounds = FactorBounds{Min: 0.75, Max: 1.15}
	EatingHabitsBounds    = FactorBounds{Min: 0.70, Max: 1.20}
	LifestyleBounds       = FactorBounds{Min: 0.55, Max: 1.45}
	HabitsBounds          = FactorBounds{Min: 0.45, Max: 1.50}
	OptimismBounds        = FactorBounds{Min: 0.8, Max: 1.2}
	AgeBounds             = FactorBounds{Min: 0.75, Max: 1.1}
)

func (b FactorBounds) clamp(v float64) float64 {
	return clamp(v, b.Min, b.Max)
}

// HealthConditionFactor = clamp(0.9 + (health-3)×0.05, 0.75, 1.15)
func HealthConditionFactor(a domain.Assumptions) float64 {
	a = a.Normalize()
	return HealthConditionBounds.clamp(0.9 + float64(a.HealthCondition-3)*0.05)
}

// EatingHabitsFactor = clamp(0.85 + (eating-3)×0.06, 0.70, 1.20)
func EatingHabitsFactor(a domain.Assumptions) float64 {
	a = a.Normalize()
	return EatingHabitsBounds.clamp(0.85 + float64(a.EatingHabits-3)*0.06)
}

// LifestyleFactor scales routine-driven items by workload, caffeine and health
func LifestyleFactor(a domain.Assumptions) float64 {
	a = a.Normalize()
	raw := 0.85 +
		float64(a.WorkdaysPerWeek-5)*0.05 +
		float64(a.CoffeesPerDay-2)*0.04
	return LifestyleBounds.clamp(raw * HealthConditionFactor(a))
}

// HabitsFactor scales habit-driven items by caffeine, workload and eating
func HabitsFactor(a domain.Assumptions) float64 {
	a = a.Normalize()
	raw := 0.6 +
		(float64(a.CoffeesPerDay)/6)*0.5 +
		(float64(a.WorkdaysPerWeek)/7)*0.3
	return HabitsBounds.clamp(raw * EatingHabitsFactor(a))
}

// OptimismFactor = clamp(0.8 + (optimism/10)×0.4, 0.8, 1.2)
func OptimismFactor(a domain.Assumptions) float64 {
	a = a.Normalize()
	return OptimismBounds.clamp(0.8 + (float64(a.Optimism)/10)*0.4)
}

// AgeFactor = clamp(1.1 - (age/100)×0.4, 0.75, 1.1)
func AgeFactor(a domain.Assumptions) float64 {
	a = a.Normalize()
	return AgeBounds.clamp(1.1 - (float64(a.Age)/100)*0.4)
}

// FactorSet is every factor evaluated for one model, for the details views
type FactorSet struct {
	HealthCondition float64 `json:"healthCondition"`
	EatingHabits    float64 `json:"eatingHabits"`
	Lifestyle       float64 `json:"lifestyle"`
	Habits          float64 `json:"habits"`
	Optimism        float64 `json:"optimism"`
	Age             float64 `json:"age"`
}

// Factors evaluates all six factors
func Factors(a domain.Assumptions) FactorSet {
	return FactorSet{
		HealthCondition: HealthConditionFactor(a),
		EatingHabits:    EatingHabitsFactor(a),
		Lifestyle:       LifestyleFactor(a),
		Habits:          HabitsFactor(a),
		Optimism:        OptimismFactor(a),
		Age:             AgeFactor(a),
	}
}

// ForTag returns the multiplier a tag contributes. Tags without a factor
// function (health, nutrition) contribute 1.
func (fs FactorSet) ForTag(tag domain.FactorTag) float64 {
	switch tag {
	case domain.TagAge:
		return fs.Age
	case domain.TagLifestyle:
		return fs.Lifestyle
	case domain.TagHabits:
		return fs.Habits
	case domain.TagOptimism:
		return fs.Optimism
	default:
		return 1
	}
}
