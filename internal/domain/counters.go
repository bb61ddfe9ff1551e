package domain

import (
	"fmt"
	"strings"
	"time"
)

// CounterKind identifies one of the headline counters
type CounterKind string

const (
	CounterCoffees  CounterKind = "coffees"
	CounterSundays  CounterKind = "sundays"
	CounterWorkdays CounterKind = "workdays"
	CounterNextWeek CounterKind = "nextWeek"
)

// CounterKinds lists the headline counters in display order
func CounterKinds() []CounterKind {
	return []CounterKind{CounterCoffees, CounterSundays, CounterWorkdays, CounterNextWeek}
}

// counterAliases accepts the spellings used by the CLI and older snapshots
var counterAliases = map[string]CounterKind{
	"coffees":   CounterCoffees,
	"coffee":    CounterCoffees,
	"sundays":   CounterSundays,
	"weeks":     CounterSundays,
	"workdays":  CounterWorkdays,
	"nextweek":  CounterNextWeek,
	"next-week": CounterNextWeek,
	"next_week": CounterNextWeek,
}

// ParseCounterKind parses a counter name, case-insensitively
func ParseCounterKind(s string) (CounterKind, error) {
	if kind, ok := counterAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("unknown counter %q (expected coffees, sundays, workdays or nextWeek)", s)
}

// HealthProfile is the qualitative label shown next to the health sliders
type HealthProfile struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Snapshot is a frozen copy of the headline counters at save time
type Snapshot struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
	Sundays   int       `json:"sundays"`
	Coffees   int       `json:"coffees"`
	Workdays  int       `json:"workdays"`
	NextWeek  int       `json:"nextWeek"`
	UnitMode  UnitMode  `json:"unitMode,omitempty"`
}

// ThemeMode is the persisted colour scheme of the interactive UI
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// Toggle returns the opposite theme
func (t ThemeMode) Toggle() ThemeMode {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Settings holds UI preferences stored next to the assumptions
type Settings struct {
	ThemeMode ThemeMode `json:"themeMode" yaml:"theme_mode"`
}

// DefaultSettings returns the settings used when nothing is stored
func DefaultSettings() Settings {
	return Settings{ThemeMode: ThemeDark}
}
