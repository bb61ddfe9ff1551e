package compare

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/domain"
)

// CompareEngine compares the live model against stored snapshots
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	Now               func() time.Time
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		Now:               time.Now,
	}
}

// Snapshot evaluates a and freezes its headline counters
func (ce *CompareEngine) Snapshot(a domain.Assumptions) domain.Snapshot {
	return NewSnapshot(ce.CalcEngine.EvaluateHeadline(a), ce.Now())
}

// Compare evaluates current and compares it against every snapshot, keeping
// the snapshot order (most recent first)
func (ce *CompareEngine) Compare(
	ctx context.Context,
	current domain.Assumptions,
	snapshots []domain.Snapshot,
) (*ComparisonSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("no snapshots to compare against")
	}

	now := ce.Now()
	baseResult := ce.MetricsCalculator.FromResult(ce.CalcEngine.EvaluateHeadline(current), now)

	alternatives := make([]ComparisonResult, 0, len(snapshots))
	for _, s := range snapshots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := ce.MetricsCalculator.FromSnapshot(s)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(row, baseResult))
	}

	compSet := &ComparisonSet{
		BaseLabel:          baseResult.Label,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		GeneratedAt:        now,
	}
	compSet.Observations = GenerateObservations(compSet)

	return compSet, nil
}

// Variant is an alternative model compared against the live one
type Variant struct {
	Label       string
	Assumptions domain.Assumptions
}

// CompareVariants evaluates current and every variant, keeping the variant
// order. Deltas are variant minus current.
func (ce *CompareEngine) CompareVariants(
	ctx context.Context,
	current domain.Assumptions,
	variants []Variant,
) (*ComparisonSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("no variants to compare against")
	}

	now := ce.Now()
	baseResult := ce.MetricsCalculator.FromResult(ce.CalcEngine.EvaluateHeadline(current), now)

	alternatives := make([]ComparisonResult, 0, len(variants))
	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := ce.MetricsCalculator.FromResult(ce.CalcEngine.EvaluateHeadline(v.Assumptions), now)
		row.Label = v.Label
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(row, baseResult))
	}

	compSet := &ComparisonSet{
		BaseLabel:          baseResult.Label,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		GeneratedAt:        now,
	}
	compSet.Observations = VariantObservations(compSet)

	return compSet, nil
}
