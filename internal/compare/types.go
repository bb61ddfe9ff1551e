package compare

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/shopspring/decimal"
)

// SnapshotDateLayout renders the display date stored with a snapshot
const SnapshotDateLayout = "1/2/2006"

// CurrentLabel names the live model in a comparison
const CurrentLabel = "Now"

// NewSnapshot freezes the headline counters of result at now
func NewSnapshot(result *calculation.Result, now time.Time) domain.Snapshot {
	return domain.Snapshot{
		ID:        uuid.NewString(),
		Timestamp: now,
		Date:      now.Format(SnapshotDateLayout),
		Sundays:   result.Headline.SundaysRemaining,
		Coffees:   result.Headline.CoffeesLeft,
		Workdays:  result.Headline.WorkdaysRemaining,
		NextWeek:  result.Headline.NextWeekStartRemaining,
		UnitMode:  result.Assumptions.UnitMode,
	}
}

// Delta is the difference of one counter from the base, absolute and in percent
type Delta struct {
	Abs decimal.Decimal `json:"abs"`
	Pct decimal.Decimal `json:"pct"`
}

// ComparisonResult is one row of a comparison: the live model or a snapshot
type ComparisonResult struct {
	Label      string    `json:"label"`
	SnapshotID string    `json:"snapshotId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`

	Sundays  int `json:"sundays"`
	Coffees  int `json:"coffees"`
	Workdays int `json:"workdays"`
	NextWeek int `json:"nextWeek"`

	// Comparison to Base
	SundaysDiff  Delta `json:"sundaysDiff"`
	CoffeesDiff  Delta `json:"coffeesDiff"`
	WorkdaysDiff Delta `json:"workdaysDiff"`
	NextWeekDiff Delta `json:"nextWeekDiff"`
}

// Value returns the counter for kind
func (r *ComparisonResult) Value(kind domain.CounterKind) int {
	switch kind {
	case domain.CounterSundays:
		return r.Sundays
	case domain.CounterCoffees:
		return r.Coffees
	case domain.CounterWorkdays:
		return r.Workdays
	case domain.CounterNextWeek:
		return r.NextWeek
	default:
		return 0
	}
}

// Diff returns the delta from base for kind
func (r *ComparisonResult) Diff(kind domain.CounterKind) Delta {
	switch kind {
	case domain.CounterSundays:
		return r.SundaysDiff
	case domain.CounterCoffees:
		return r.CoffeesDiff
	case domain.CounterWorkdays:
		return r.WorkdaysDiff
	case domain.CounterNextWeek:
		return r.NextWeekDiff
	default:
		return Delta{}
	}
}

// ComparisonSet is the live model compared against stored snapshots
type ComparisonSet struct {
	BaseLabel          string             `json:"baseLabel"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Observations       []string           `json:"observations"`
	GeneratedAt        time.Time          `json:"generatedAt"`
}

// MetricsCalculator turns results and snapshots into comparison rows
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// FromResult builds the base row from a live evaluation
func (mc *MetricsCalculator) FromResult(result *calculation.Result, now time.Time) ComparisonResult {
	return ComparisonResult{
		Label:     CurrentLabel,
		Timestamp: now,
		Sundays:   result.Headline.SundaysRemaining,
		Coffees:   result.Headline.CoffeesLeft,
		Workdays:  result.Headline.WorkdaysRemaining,
		NextWeek:  result.Headline.NextWeekStartRemaining,
	}
}

// FromSnapshot builds a row from a stored snapshot
func (mc *MetricsCalculator) FromSnapshot(s domain.Snapshot) ComparisonResult {
	label := s.Date
	if label == "" && !s.Timestamp.IsZero() {
		label = s.Timestamp.Format(SnapshotDateLayout)
	}
	return ComparisonResult{
		Label:      label,
		SnapshotID: s.ID,
		Timestamp:  s.Timestamp,
		Sundays:    s.Sundays,
		Coffees:    s.Coffees,
		Workdays:   s.Workdays,
		NextWeek:   s.NextWeek,
	}
}

// CalculateComparison fills the deltas of row against base
func (mc *MetricsCalculator) CalculateComparison(row, base ComparisonResult) ComparisonResult {
	row.SundaysDiff = delta(row.Sundays, base.Sundays)
	row.CoffeesDiff = delta(row.Coffees, base.Coffees)
	row.WorkdaysDiff = delta(row.Workdays, base.Workdays)
	row.NextWeekDiff = delta(row.NextWeek, base.NextWeek)
	return row
}

func delta(value, base int) Delta {
	d := Delta{Abs: decimal.NewFromInt(int64(value - base))}
	if base != 0 {
		d.Pct = d.Abs.Div(decimal.NewFromInt(int64(base))).Mul(decimal.NewFromInt(100))
	}
	return d
}

// GenerateObservations summarizes how far the live model has moved from the
// oldest and the newest snapshot
func GenerateObservations(compSet *ComparisonSet) []string {
	observations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return observations
	}

	newest := compSet.AlternativeResults[0]
	observations = append(observations, describe(newest, "Latest"))

	if len(compSet.AlternativeResults) > 1 {
		oldest := compSet.AlternativeResults[len(compSet.AlternativeResults)-1]
		observations = append(observations, describe(oldest, "Oldest"))
	}

	return observations
}

func describe(row ComparisonResult, which string) string {
	// deltas are snapshot minus now, so a positive value was spent since
	spent := row.SundaysDiff.Abs
	switch {
	case spent.IsPositive():
		return fmt.Sprintf("%s snapshot (%s): %s fewer Sundays remaining now", which, row.Label, spent.StringFixed(0))
	case spent.IsNegative():
		return fmt.Sprintf("%s snapshot (%s): %s more Sundays remaining now", which, row.Label, spent.Neg().StringFixed(0))
	default:
		return fmt.Sprintf("%s snapshot (%s): no change in Sundays remaining", which, row.Label)
	}
}

// VariantObservations names the variant that gains the most Sundays and the
// one that gains the most coffees
func VariantObservations(compSet *ComparisonSet) []string {
	observations := []string{}
	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return observations
	}

	bestSundays := compSet.AlternativeResults[0]
	bestCoffees := compSet.AlternativeResults[0]
	for _, alt := range compSet.AlternativeResults[1:] {
		if alt.SundaysDiff.Abs.GreaterThan(bestSundays.SundaysDiff.Abs) {
			bestSundays = alt
		}
		if alt.CoffeesDiff.Abs.GreaterThan(bestCoffees.CoffeesDiff.Abs) {
			bestCoffees = alt
		}
	}

	if bestSundays.SundaysDiff.Abs.IsPositive() {
		observations = append(observations, fmt.Sprintf("Most Sundays: %s (+%s)",
			bestSundays.Label, bestSundays.SundaysDiff.Abs.StringFixed(0)))
	} else {
		observations = append(observations, "No variant adds Sundays")
	}
	if bestCoffees.CoffeesDiff.Abs.IsPositive() {
		observations = append(observations, fmt.Sprintf("Most coffees: %s (+%s)",
			bestCoffees.Label, bestCoffees.CoffeesDiff.Abs.StringFixed(0)))
	}
	return observations
}
