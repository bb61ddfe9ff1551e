package output

import (
	"time"

	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/shopspring/decimal"
)

// CounterLine is one headline counter with its explanation
type CounterLine struct {
	Kind          domain.CounterKind `json:"kind"`
	Title         string             `json:"title"`
	Value         int                `json:"value"`
	Subtext       string             `json:"subtext"`
	HowCalculated string             `json:"howCalculated"`
	Formula       string             `json:"formula"`
}

// FactorLine is one factor with its clamp bounds
type FactorLine struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
}

// ItemLine is one valued catalog row
type ItemLine struct {
	ID              string             `json:"id"`
	Label           string             `json:"label"`
	Unit            string             `json:"unit"`
	Value           int                `json:"value"`
	Description     string             `json:"description"`
	CalculationHint string             `json:"calculationHint"`
	AffectedBy      []domain.FactorTag `json:"affectedBy"`
	Factor          decimal.Decimal    `json:"factor"`
}

// Report bundles everything a formatter renders for one model
type Report struct {
	GeneratedAt               time.Time            `json:"generatedAt"`
	Assumptions               domain.Assumptions   `json:"assumptions"`
	AdjustedLifeExpectancyAge int                  `json:"adjustedLifeExpectancyAge"`
	RemainingYears            int                  `json:"remainingYears"`
	RemainingWeeks            int                  `json:"remainingWeeks"`
	HealthProfile             domain.HealthProfile `json:"healthProfile"`
	Counters                  []CounterLine        `json:"counters"`
	Factors                   []FactorLine         `json:"factors"`
	Items                     []ItemLine           `json:"items,omitempty"`
	AssumptionsUsed           []string             `json:"assumptionsUsed"`
	Prompt                    string               `json:"prompt"`
	Disclaimer                string               `json:"disclaimer"`
	Footer                    string               `json:"footer"`
}

// factorPlaces is the precision factors are displayed with
const factorPlaces = 3

// BuildReport turns an evaluation into a report. Counter values carry the
// unit mode, so the Sundays line reads in years when the model says so.
func BuildReport(result *calculation.Result, now time.Time) *Report {
	a := result.Assumptions
	micro := copytext.Microcopy(a.Tone)

	report := &Report{
		GeneratedAt:               now,
		Assumptions:               a,
		AdjustedLifeExpectancyAge: result.AdjustedLifeExpectancyAge,
		RemainingYears:            result.RemainingYears,
		RemainingWeeks:            result.RemainingWeeks,
		HealthProfile:             result.HealthProfile,
		AssumptionsUsed:           copytext.AssumptionsUsed(a),
		Prompt:                    micro.Prompt,
		Disclaimer:                micro.Disclaimer,
		Footer:                    copytext.DetailsFooter,
	}

	for _, kind := range domain.CounterKinds() {
		report.Counters = append(report.Counters, CounterLine{
			Kind:          kind,
			Title:         copytext.DisplayTitle(kind, a),
			Value:         result.Displayed(kind),
			Subtext:       copytext.Subtext(kind, a),
			HowCalculated: copytext.HowCalculated(kind),
			Formula:       copytext.Formula(kind),
		})
	}

	fs := result.Factors
	report.Factors = []FactorLine{
		factorLine("health condition", fs.HealthCondition, calculation.HealthConditionBounds),
		factorLine("eating habits", fs.EatingHabits, calculation.EatingHabitsBounds),
		factorLine("lifestyle", fs.Lifestyle, calculation.LifestyleBounds),
		factorLine("habits", fs.Habits, calculation.HabitsBounds),
		factorLine("optimism", fs.Optimism, calculation.OptimismBounds),
		factorLine("age", fs.Age, calculation.AgeBounds),
	}

	for _, iv := range result.Items {
		report.Items = append(report.Items, ItemLine{
			ID:              iv.Item.ID,
			Label:           iv.Item.Label,
			Unit:            iv.Item.Unit,
			Value:           iv.Value,
			Description:     iv.Item.Description,
			CalculationHint: iv.Item.CalculationHint,
			AffectedBy:      iv.Item.AffectedBy,
			Factor:          decimal.NewFromFloat(iv.Factor).Round(factorPlaces),
		})
	}

	return report
}

func factorLine(name string, v float64, b calculation.FactorBounds) FactorLine {
	return FactorLine{
		Name:  name,
		Value: decimal.NewFromFloat(v).Round(factorPlaces),
		Min:   decimal.NewFromFloat(b.Min),
		Max:   decimal.NewFromFloat(b.Max),
	}
}

// Counter returns the line for kind, or false
func (r *Report) Counter(kind domain.CounterKind) (CounterLine, bool) {
	for _, c := range r.Counters {
		if c.Kind == kind {
			return c, true
		}
	}
	return CounterLine{}, false
}
