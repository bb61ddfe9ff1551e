package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/countdown/internal/calculation"
	"github.com/rgehrsitz/countdown/internal/compare"
	"github.com/rgehrsitz/countdown/internal/config"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/logging"
	"github.com/rgehrsitz/countdown/internal/storage"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "countdown %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// app is what every command needs once the configuration is loaded
type app struct {
	cfg     *config.Configuration
	store   storage.Store
	repo    *storage.Repository
	calc    *calculation.CalculationEngine
	compare *compare.CompareEngine
	logger  logging.Logger
}

// openApp loads --config, opens the configured store and wires the engines
func openApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	debugMode, _ := cmd.Flags().GetBool("debug")

	var logger logging.Logger = logging.NopLogger{}
	if debugMode {
		logger = logging.StdLogger{Verbose: true}
	}

	cfg, err := config.NewInputParser().LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	repo := storage.NewRepositoryFromConfig(store, cfg)
	repo.SetLogger(logger)

	calc := calculation.NewCalculationEngine()
	calc.SetLogger(logger)
	calc.Debug = debugMode

	return &app{
		cfg:     cfg,
		store:   store,
		repo:    repo,
		calc:    calc,
		compare: compare.NewCompareEngine(calc),
		logger:  logger,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// withApp runs fn with an opened app and closes it afterwards
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := a.Close(); cerr != nil {
				a.logger.Warnf("closing storage: %v", cerr)
			}
		}()
		return fn(cmd, args, a)
	}
}

// addAssumptionFlags registers one flag per assumption field
func addAssumptionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("age", 0, fmt.Sprintf("Current age (%d-%d)", domain.MinAge, domain.MaxAge))
	cmd.Flags().String("life-expectancy", "", "Life expectancy preset (short, average, optimistic)")
	cmd.Flags().Int("health", 0, fmt.Sprintf("Health condition (%d-%d)", domain.MinHealthCondition, domain.MaxHealthCondition))
	cmd.Flags().Int("eating", 0, fmt.Sprintf("Eating habits (%d-%d)", domain.MinEatingHabits, domain.MaxEatingHabits))
	cmd.Flags().Int("coffees", 0, fmt.Sprintf("Coffees per day (%d-%d)", domain.MinCoffeesPerDay, domain.MaxCoffeesPerDay))
	cmd.Flags().Int("workdays", 0, fmt.Sprintf("Workdays per week (%d-%d)", domain.MinWorkdaysPerWeek, domain.MaxWorkdaysPerWeek))
	cmd.Flags().Int("optimism", 0, fmt.Sprintf("Optimism (%d-%d)", domain.MinOptimism, domain.MaxOptimism))
	cmd.Flags().String("tone", "", "Copy tone (dry, bleak, bureaucratic, cosmic)")
	cmd.Flags().String("unit", "", "Unit mode (weekly, yearly)")
}

// applyAssumptionFlags overrides the fields of a whose flags were given and
// rejects values outside the slider domains
func applyAssumptionFlags(cmd *cobra.Command, a domain.Assumptions) (domain.Assumptions, error) {
	flags := cmd.Flags()
	ints := []struct {
		name  string
		field *int
	}{
		{"age", &a.Age},
		{"health", &a.HealthCondition},
		{"eating", &a.EatingHabits},
		{"coffees", &a.CoffeesPerDay},
		{"workdays", &a.WorkdaysPerWeek},
		{"optimism", &a.Optimism},
	}
	for _, f := range ints {
		if flags.Changed(f.name) {
			*f.field, _ = flags.GetInt(f.name)
		}
	}

	if flags.Changed("life-expectancy") {
		s, _ := flags.GetString("life-expectancy")
		le, err := domain.ParseLifeExpectancy(s)
		if err != nil {
			return a, err
		}
		a.LifeExpectancy = le
	}
	if flags.Changed("tone") {
		s, _ := flags.GetString("tone")
		tone, err := domain.ParseTone(s)
		if err != nil {
			return a, err
		}
		a.Tone = tone
	}
	if flags.Changed("unit") {
		s, _ := flags.GetString("unit")
		unit, err := domain.ParseUnitMode(s)
		if err != nil {
			return a, err
		}
		a.UnitMode = unit
	}

	if err := config.ValidateAssumptions(a); err != nil {
		return a, err
	}
	return a, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "countdown",
		Short: "Existential countdown CLI",
		Long: `Turns a handful of assumptions about your life into finite counts of
ordinary things: coffees left, Sundays remaining, workdays, Monday mornings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	root.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	root.AddCommand(showCmd())
	root.AddCommand(explainCmd())
	root.AddCommand(catalogCmd())
	root.AddCommand(assumptionsCmd())
	root.AddCommand(snapshotCmd())
	root.AddCommand(whatifCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(resetCmd())
	root.AddCommand(versionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
