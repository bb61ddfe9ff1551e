package calculation

import (
	"math"

	"github.com/rgehrsitz/countdown/internal/catalog"
	"github.com/rgehrsitz/countdown/internal/domain"
)

// factorOrder is the order in which tag multipliers are applied
var factorOrder = []domain.FactorTag{
	domain.TagAge,
	domain.TagLifestyle,
	domain.TagHabits,
	domain.TagOptimism,
}

// BaseCount scales a rate by the remaining horizon. A weekly rate wins over a
// yearly one; a zero rate yields 0.
func BaseCount(a domain.Assumptions, rate domain.Rate) float64 {
	if rate.PerWeek != 0 {
		return float64(RemainingWeeks(a)) * rate.PerWeek
	}
	if rate.PerYear != 0 {
		return float64(RemainingYears(a)) * rate.PerYear
	}
	return 0
}

// CombinedFactor multiplies together the factors named by the item's tags.
// Each tag counts once; health and nutrition have no factor and contribute 1.
func CombinedFactor(a domain.Assumptions, item domain.LifeAssumption) float64 {
	return combinedFactor(Factors(a), item)
}

func combinedFactor(fs FactorSet, item domain.LifeAssumption) float64 {
	factor := 1.0
	for _, tag := range factorOrder {
		if item.AffectedByTag(tag) {
			factor *= fs.ForTag(tag)
		}
	}
	return factor
}

// ValueOf values a catalog item against the built-in rate table. The rate is
// looked up by id; an id missing from the table is worth 0.
func ValueOf(a domain.Assumptions, item domain.LifeAssumption) int {
	return valueWithRate(a, item, catalog.Default().Rate(item.ID))
}

func valueWithRate(a domain.Assumptions, item domain.LifeAssumption, rate domain.Rate) int {
	return floorNonNegative(BaseCount(a, rate) * CombinedFactor(a, item))
}

func floorNonNegative(v float64) int {
	return int(math.Floor(math.Max(0, v)))
}
