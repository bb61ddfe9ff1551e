package calculation

import (
	"github.com/rgehrsitz/countdown/internal/catalog"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/logging"
)

// CalculationEngine evaluates an assumption model into every derived counter.
// It holds no per-model state and is safe to share.
type CalculationEngine struct {
	Catalog *catalog.Catalog
	Logger  logging.Logger
	Debug   bool // log intermediate values of every evaluation
}

// NewCalculationEngine creates an engine over the embedded catalog
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithCatalog(catalog.Default())
}

// NewCalculationEngineWithCatalog creates an engine over a custom catalog
func NewCalculationEngineWithCatalog(c *catalog.Catalog) *CalculationEngine {
	return &CalculationEngine{
		Catalog: c,
		Logger:  logging.NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l logging.Logger) {
	ce.Logger = logging.OrNop(l)
}

// Headline holds the four headline counters plus the yearly rendition
type Headline struct {
	CoffeesLeft            int `json:"coffeesLeft"`
	SundaysRemaining       int `json:"sundaysRemaining"`
	WorkdaysRemaining      int `json:"workdaysRemaining"`
	NextWeekStartRemaining int `json:"nextWeekStartRemaining"`
	YearsRemaining         int `json:"yearsRemaining"`
}

// Value returns the counter for kind; unknown kinds are 0
func (h Headline) Value(kind domain.CounterKind) int {
	switch kind {
	case domain.CounterCoffees:
		return h.CoffeesLeft
	case domain.CounterSundays:
		return h.SundaysRemaining
	case domain.CounterWorkdays:
		return h.WorkdaysRemaining
	case domain.CounterNextWeek:
		return h.NextWeekStartRemaining
	default:
		return 0
	}
}

// ItemValue is one valued catalog row
type ItemValue struct {
	Item      domain.LifeAssumption `json:"item"`
	BaseCount float64               `json:"baseCount"`
	Factor    float64               `json:"factor"`
	Value     int                   `json:"value"`
}

// Result is the full derivation of one assumption model
type Result struct {
	Assumptions               domain.Assumptions   `json:"assumptions"`
	AdjustedLifeExpectancyAge int                  `json:"adjustedLifeExpectancyAge"`
	RemainingYears            int                  `json:"remainingYears"`
	RemainingWeeks            int                  `json:"remainingWeeks"`
	Headline                  Headline             `json:"headline"`
	Factors                   FactorSet            `json:"factors"`
	HealthProfile             domain.HealthProfile `json:"healthProfile"`
	Items                     []ItemValue          `json:"items,omitempty"`
}

// Displayed returns the counter for kind with the unit mode applied
func (r *Result) Displayed(kind domain.CounterKind) int {
	if kind == domain.CounterSundays && r.Assumptions.UnitMode == domain.UnitModeYearly {
		return r.Headline.YearsRemaining
	}
	return r.Headline.Value(kind)
}

// Evaluate derives every headline counter, the factor set and the whole catalog
func (ce *CalculationEngine) Evaluate(a domain.Assumptions) *Result {
	return ce.evaluate(a, ce.Catalog.All())
}

// EvaluateItems derives the headline counters and the given catalog items only
func (ce *CalculationEngine) EvaluateItems(a domain.Assumptions, items []domain.LifeAssumption) *Result {
	return ce.evaluate(a, items)
}

// EvaluateHeadline derives the headline counters without valuing any item
func (ce *CalculationEngine) EvaluateHeadline(a domain.Assumptions) *Result {
	return ce.evaluate(a, nil)
}

func (ce *CalculationEngine) evaluate(a domain.Assumptions, items []domain.LifeAssumption) *Result {
	normalized := a.Normalize()
	if normalized != a {
		ce.Logger.Debugf("assumptions re-clamped from %+v to %+v", a, normalized)
	}

	result := &Result{
		Assumptions:               normalized,
		AdjustedLifeExpectancyAge: AdjustedLifeExpectancyAge(normalized),
		RemainingYears:            RemainingYears(normalized),
		RemainingWeeks:            RemainingWeeks(normalized),
		Headline: Headline{
			CoffeesLeft:            CoffeesLeft(normalized),
			SundaysRemaining:       SundaysRemaining(normalized),
			WorkdaysRemaining:      WorkdaysRemaining(normalized),
			NextWeekStartRemaining: NextWeekStartRemaining(normalized),
			YearsRemaining:         YearsRemaining(normalized),
		},
		Factors:       Factors(normalized),
		HealthProfile: HealthProfile(normalized),
	}

	if len(items) > 0 {
		result.Items = make([]ItemValue, 0, len(items))
		for _, item := range items {
			result.Items = append(result.Items, ce.valueItem(normalized, result.Factors, item))
		}
	}

	if ce.Debug {
		ce.Logger.Debugf("expectancy=%d years=%d weeks=%d headline=%+v factors=%+v",
			result.AdjustedLifeExpectancyAge, result.RemainingYears, result.RemainingWeeks,
			result.Headline, result.Factors)
	}
	return result
}

// ValueOf values one item against the engine's catalog rates
func (ce *CalculationEngine) ValueOf(a domain.Assumptions, item domain.LifeAssumption) int {
	normalized := a.Normalize()
	return ce.valueItem(normalized, Factors(normalized), item).Value
}

func (ce *CalculationEngine) valueItem(a domain.Assumptions, fs FactorSet, item domain.LifeAssumption) ItemValue {
	rate := ce.Catalog.Rate(item.ID)
	if rate.IsZero() {
		ce.Logger.Warnf("no base rate for catalog item %q; valuing as 0", item.ID)
	}
	base := BaseCount(a, rate)
	factor := combinedFactor(fs, item)
	return ItemValue{
		Item:      item,
		BaseCount: base,
		Factor:    factor,
		Value:     floorNonNegative(base * factor),
	}
}
