package domain

import (
	"fmt"
	"slices"
)

// FactorTag names an input dimension that scales a catalog item's base rate
type FactorTag string

const (
	TagAge       FactorTag = "age"
	TagLifestyle FactorTag = "lifestyle"
	TagHabits    FactorTag = "habits"
	TagOptimism  FactorTag = "optimism"
	TagHealth    FactorTag = "health"
	TagNutrition FactorTag = "nutrition"
)

// FactorTags is the full tag vocabulary
func FactorTags() []FactorTag {
	return []FactorTag{TagAge, TagLifestyle, TagHabits, TagOptimism, TagHealth, TagNutrition}
}

// Valid reports whether the tag belongs to the vocabulary
func (t FactorTag) Valid() bool {
	return slices.Contains(FactorTags(), t)
}

// Rate is the base frequency of a catalog item. Exactly one of PerWeek or
// PerYear is set for a well-formed row.
type Rate struct {
	PerWeek float64 `yaml:"per_week,omitempty" json:"perWeek,omitempty"`
	PerYear float64 `yaml:"per_year,omitempty" json:"perYear,omitempty"`
}

// IsZero reports whether the rate carries no frequency at all
func (r Rate) IsZero() bool {
	return r.PerWeek == 0 && r.PerYear == 0
}

// LifeAssumption is one row of the static catalog of countable things
type LifeAssumption struct {
	ID              string      `yaml:"id" json:"id"`
	Label           string      `yaml:"label" json:"label"`
	Unit            string      `yaml:"unit" json:"unit"`
	Description     string      `yaml:"description" json:"description"`
	CalculationHint string      `yaml:"calculation_hint" json:"calculationHint"`
	AffectedBy      []FactorTag `yaml:"affected_by" json:"affectedBy"`
	Rate            Rate        `yaml:"rate" json:"rate"`
}

// AffectedByTag reports whether the item lists the given tag
func (la LifeAssumption) AffectedByTag(tag FactorTag) bool {
	return slices.Contains(la.AffectedBy, tag)
}

// Validate checks a single catalog row
func (la LifeAssumption) Validate() error {
	if la.ID == "" {
		return fmt.Errorf("id is required")
	}
	if la.Label == "" {
		return fmt.Errorf("label is required")
	}
	if la.Rate.PerWeek < 0 || la.Rate.PerYear < 0 {
		return fmt.Errorf("rate cannot be negative")
	}
	if (la.Rate.PerWeek > 0) == (la.Rate.PerYear > 0) {
		return fmt.Errorf("exactly one of per_week or per_year must be set")
	}
	for _, tag := range la.AffectedBy {
		if !tag.Valid() {
			return fmt.Errorf("unknown factor tag %q", tag)
		}
	}
	return nil
}
