package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/countdown/internal/catalog"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DefaultDebounce is the quiet period between the last edit and the commit
const DefaultDebounce = 150 * time.Millisecond

// DefaultSnapshotLimit is the number of snapshots kept, newest first
const DefaultSnapshotLimit = 3

// StorageConfig selects where assumptions, snapshots and settings live.
// An empty path resolves to the per-user config directory.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// SnapshotConfig bounds the snapshot history; 0 keeps every snapshot
type SnapshotConfig struct {
	Limit int `yaml:"limit"`
}

// UIConfig tunes the interactive front end
type UIConfig struct {
	Debounce       time.Duration    `yaml:"debounce"`
	CatalogSetSize int              `yaml:"catalog_set_size"`
	Theme          domain.ThemeMode `yaml:"theme"`
}

// Configuration is the whole countdown configuration file
type Configuration struct {
	Storage   StorageConfig      `yaml:"storage"`
	Snapshots SnapshotConfig     `yaml:"snapshots"`
	UI        UIConfig           `yaml:"ui"`
	Schedule  string             `yaml:"schedule"`
	Defaults  domain.Assumptions `yaml:"defaults"`
}

// DefaultConfiguration returns the configuration used when no file is given
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Storage:   StorageConfig{Backend: BackendFile},
		Snapshots: SnapshotConfig{Limit: DefaultSnapshotLimit},
		UI: UIConfig{
			Debounce:       DefaultDebounce,
			CatalogSetSize: catalog.DefaultSampleSize,
			Theme:          domain.ThemeDark,
		},
		Defaults: domain.DefaultAssumptions(),
	}
}

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// LoadOrDefault loads filename, or returns the default configuration when
// filename is empty
func (ip *InputParser) LoadOrDefault(filename string) (*Configuration, error) {
	if filename == "" {
		return DefaultConfiguration(), nil
	}
	return ip.LoadFromFile(filename)
}

// Parse decodes YAML over the default configuration and validates the result
func (ip *InputParser) Parse(data []byte) (*Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := ip.validateStorage(&config.Storage); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if config.Snapshots.Limit < 0 {
		return fmt.Errorf("snapshots: limit cannot be negative")
	}
	if err := ip.validateUI(&config.UI); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	if config.Schedule != "" {
		if _, err := cron.ParseStandard(config.Schedule); err != nil {
			return fmt.Errorf("schedule %q is not a valid cron spec: %w", config.Schedule, err)
		}
	}
	if err := ValidateAssumptions(config.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

func (ip *InputParser) validateStorage(s *StorageConfig) error {
	switch s.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
		return nil
	case "":
		return fmt.Errorf("backend is required")
	default:
		return fmt.Errorf("unknown backend %q (expected memory, file or sqlite)", s.Backend)
	}
}

func (ip *InputParser) validateUI(ui *UIConfig) error {
	if ui.Debounce < 0 {
		return fmt.Errorf("debounce cannot be negative")
	}
	if ui.CatalogSetSize <= 0 {
		return fmt.Errorf("catalog_set_size must be positive")
	}
	if ui.Theme != domain.ThemeDark && ui.Theme != domain.ThemeLight {
		return fmt.Errorf("unknown theme %q (expected dark or light)", ui.Theme)
	}
	return nil
}

// ValidateAssumptions rejects values outside the slider domains. Runtime code
// clamps instead; a configuration file is expected to be right.
func ValidateAssumptions(a domain.Assumptions) error {
	ranges := []struct {
		name  string
		value int
		min   int
		max   int
	}{
		{"age", a.Age, domain.MinAge, domain.MaxAge},
		{"health_condition", a.HealthCondition, domain.MinHealthCondition, domain.MaxHealthCondition},
		{"eating_habits", a.EatingHabits, domain.MinEatingHabits, domain.MaxEatingHabits},
		{"coffees_per_day", a.CoffeesPerDay, domain.MinCoffeesPerDay, domain.MaxCoffeesPerDay},
		{"workdays_per_week", a.WorkdaysPerWeek, domain.MinWorkdaysPerWeek, domain.MaxWorkdaysPerWeek},
		{"optimism", a.Optimism, domain.MinOptimism, domain.MaxOptimism},
	}
	for _, r := range ranges {
		if r.value < r.min || r.value > r.max {
			return fmt.Errorf("%s must be between %d and %d, got %d", r.name, r.min, r.max, r.value)
		}
	}

	if !a.LifeExpectancy.Valid() {
		return fmt.Errorf("unknown life_expectancy %q", a.LifeExpectancy)
	}
	if !a.Tone.Valid() {
		return fmt.Errorf("unknown tone %q", a.Tone)
	}
	if !a.UnitMode.Valid() {
		return fmt.Errorf("unknown unit_mode %q", a.UnitMode)
	}
	return nil
}
