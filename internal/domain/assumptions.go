package domain

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// LifeExpectancy is the coarse life expectancy band chosen by the user
type LifeExpectancy string

const (
	LifeExpectancyShort      LifeExpectancy = "short"
	LifeExpectancyAverage    LifeExpectancy = "average"
	LifeExpectancyOptimistic LifeExpectancy = "optimistic"
)

// lifeExpectancyAges maps each band to its base expectancy age in years
var lifeExpectancyAges = map[LifeExpectancy]int{
	LifeExpectancyShort:      70,
	LifeExpectancyAverage:    80,
	LifeExpectancyOptimistic: 90,
}

// Age returns the base expectancy age for the band. Unknown bands use the average.
func (le LifeExpectancy) Age() int {
	if age, ok := lifeExpectancyAges[le]; ok {
		return age
	}
	return lifeExpectancyAges[LifeExpectancyAverage]
}

// Valid reports whether the band is one of the known values
func (le LifeExpectancy) Valid() bool {
	_, ok := lifeExpectancyAges[le]
	return ok
}

// LifeExpectancies lists the bands in display order
func LifeExpectancies() []LifeExpectancy {
	return []LifeExpectancy{LifeExpectancyShort, LifeExpectancyAverage, LifeExpectancyOptimistic}
}

// ParseLifeExpectancy parses a band name
func ParseLifeExpectancy(s string) (LifeExpectancy, error) {
	le := LifeExpectancy(strings.ToLower(strings.TrimSpace(s)))
	if !le.Valid() {
		return "", fmt.Errorf("unknown life expectancy %q (expected short, average or optimistic)", s)
	}
	return le, nil
}

// Tone selects the voice of the display copy. It never changes a number.
type Tone string

const (
	ToneDry          Tone = "dry"
	ToneBleak        Tone = "bleak"
	ToneBureaucratic Tone = "bureaucratic"
	ToneCosmic       Tone = "cosmic"
)

// Tones lists the tones in display order
func Tones() []Tone {
	return []Tone{ToneDry, ToneBleak, ToneBureaucratic, ToneCosmic}
}

// Valid reports whether the tone is one of the known values
func (t Tone) Valid() bool {
	switch t {
	case ToneDry, ToneBleak, ToneBureaucratic, ToneCosmic:
		return true
	}
	return false
}

// ParseTone parses a tone name
func ParseTone(s string) (Tone, error) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tone %q (expected dry, bleak, bureaucratic or cosmic)", s)
	}
	return t, nil
}

// UnitMode selects whether the Sundays counter is shown in weeks or years
type UnitMode string

const (
	UnitModeWeekly UnitMode = "weekly"
	UnitModeYearly UnitMode = "yearly"
)

// Valid reports whether the unit mode is known
func (u UnitMode) Valid() bool {
	return u == UnitModeWeekly || u == UnitModeYearly
}

// ParseUnitMode parses a unit mode name
func ParseUnitMode(s string) (UnitMode, error) {
	u := UnitMode(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("unknown unit mode %q (expected weekly or yearly)", s)
	}
	return u, nil
}

// Slider domains shared by the editor, the CLI flags and Normalize
const (
	MinAge             = 0
	MaxAge             = 120
	MinHealthCondition = 1
	MaxHealthCondition = 5
	MinEatingHabits    = 1
	MaxEatingHabits    = 5
	MinCoffeesPerDay   = 0
	MaxCoffeesPerDay   = 6
	MinWorkdaysPerWeek = 0
	MaxWorkdaysPerWeek = 7
	MinOptimism        = 0
	MaxOptimism        = 10
)

// Assumptions holds every user-supplied input driving the derived counters.
// Values are replaced wholesale on edit; the With* helpers return new copies.
type Assumptions struct {
	Age             int            `yaml:"age" json:"age"`
	LifeExpectancy  LifeExpectancy `yaml:"life_expectancy" json:"lifeExpectancy"`
	HealthCondition int            `yaml:"health_condition" json:"healthCondition"`
	EatingHabits    int            `yaml:"eating_habits" json:"eatingHabits"`
	CoffeesPerDay   int            `yaml:"coffees_per_day" json:"coffeesPerDay"`
	WorkdaysPerWeek int            `yaml:"workdays_per_week" json:"workdaysPerWeek"`
	Optimism        int            `yaml:"optimism" json:"optimism"`
	Tone            Tone           `yaml:"tone" json:"tone"`
	UnitMode        UnitMode       `yaml:"unit_mode" json:"unitMode"`
}

// DefaultAssumptions returns the model used on first launch and after a reset
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Age:             30,
		LifeExpectancy:  LifeExpectancyAverage,
		HealthCondition: 3,
		EatingHabits:    3,
		CoffeesPerDay:   2,
		WorkdaysPerWeek: 5,
		Optimism:        5,
		Tone:            ToneDry,
		UnitMode:        UnitModeWeekly,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns a copy with every numeric field clamped into its slider
// domain and unknown enum values replaced by their defaults
func (a Assumptions) Normalize() Assumptions {
	def := DefaultAssumptions()
	a.Age = clampInt(a.Age, MinAge, MaxAge)
	a.HealthCondition = clampInt(a.HealthCondition, MinHealthCondition, MaxHealthCondition)
	a.EatingHabits = clampInt(a.EatingHabits, MinEatingHabits, MaxEatingHabits)
	a.CoffeesPerDay = clampInt(a.CoffeesPerDay, MinCoffeesPerDay, MaxCoffeesPerDay)
	a.WorkdaysPerWeek = clampInt(a.WorkdaysPerWeek, MinWorkdaysPerWeek, MaxWorkdaysPerWeek)
	a.Optimism = clampInt(a.Optimism, MinOptimism, MaxOptimism)
	if !a.LifeExpectancy.Valid() {
		a.LifeExpectancy = def.LifeExpectancy
	}
	if !a.Tone.Valid() {
		a.Tone = def.Tone
	}
	if !a.UnitMode.Valid() {
		a.UnitMode = def.UnitMode
	}
	return a
}

func (a Assumptions) WithAge(v int) Assumptions {
	a.Age = v
	return a.Normalize()
}

func (a Assumptions) WithLifeExpectancy(v LifeExpectancy) Assumptions {
	a.LifeExpectancy = v
	return a.Normalize()
}

func (a Assumptions) WithHealthCondition(v int) Assumptions {
	a.HealthCondition = v
	return a.Normalize()
}

func (a Assumptions) WithEatingHabits(v int) Assumptions {
	a.EatingHabits = v
	return a.Normalize()
}

func (a Assumptions) WithCoffeesPerDay(v int) Assumptions {
	a.CoffeesPerDay = v
	return a.Normalize()
}

func (a Assumptions) WithWorkdaysPerWeek(v int) Assumptions {
	a.WorkdaysPerWeek = v
	return a.Normalize()
}

func (a Assumptions) WithOptimism(v int) Assumptions {
	a.Optimism = v
	return a.Normalize()
}

func (a Assumptions) WithTone(v Tone) Assumptions {
	a.Tone = v
	return a.Normalize()
}

func (a Assumptions) WithUnitMode(v UnitMode) Assumptions {
	a.UnitMode = v
	return a.Normalize()
}

// MergeOverDefaults decodes a stored JSON object on top of base. Fields present
// in raw override base, missing fields keep the base value. The result is normalized.
func MergeOverDefaults(base Assumptions, raw []byte) (Assumptions, error) {
	merged := base
	if err := json.Unmarshal(raw, &merged); err != nil {
		return base.Normalize(), fmt.Errorf("failed to decode assumptions: %w", err)
	}
	return merged.Normalize(), nil
}
