package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/domain"
	"github.com/rgehrsitz/countdown/internal/output"
)

// formatExtensions maps formatter names to output file extensions
var formatExtensions = map[string]string{
	"console":  "txt",
	"markdown": "md",
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every counter for the stored assumptions",
		Long: `Evaluate the stored assumptions and print the four counters, the factors
and the valued catalog. Assumption flags override stored values for this run only.

Examples:
  countdown show
  countdown show --age 45 --coffees 3
  countdown show --format markdown --output-dir reports`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			assumptions, err := applyAssumptionFlags(cmd, a.repo.LoadAssumptions(cmd.Context()))
			if err != nil {
				return err
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(outputFormat)
			if f == nil {
				return fmt.Errorf("unknown output format: %s (valid: %s)",
					outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			report := output.BuildReport(a.calc.Evaluate(assumptions), time.Now())

			outputDir, _ := cmd.Flags().GetString("output-dir")
			if outputDir != "" {
				ext, ok := formatExtensions[f.Name()]
				if !ok {
					ext = f.Name()
				}
				path, err := output.WriteFormatted(f, report, outputDir, ext)
				if err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				return nil
			}

			data, err := f.Format(report)
			if err != nil {
				return fmt.Errorf("failed to format %s: %w", f.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}),
	}
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, html, markdown)")
	cmd.Flags().String("output-dir", "", "Write the report to a timestamped file in this directory")
	addAssumptionFlags(cmd)
	return cmd
}

func explainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <counter>",
		Short: "Explain how a counter is calculated",
		Long: `Print the details panel of one counter: its value, how it is calculated,
the formula and the assumptions used.

Counters: coffees, sundays, workdays, nextWeek`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			kind, err := domain.ParseCounterKind(args[0])
			if err != nil {
				return err
			}
			assumptions, err := applyAssumptionFlags(cmd, a.repo.LoadAssumptions(cmd.Context()))
			if err != nil {
				return err
			}
			result := a.calc.EvaluateHeadline(assumptions)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %s\n", copytext.DisplayTitle(kind, result.Assumptions),
				copytext.FormatCount(result.Displayed(kind)))
			fmt.Fprintln(w, copytext.Subtext(kind, result.Assumptions))
			fmt.Fprintln(w)
			fmt.Fprintln(w, "HOW IT’S CALCULATED")
			fmt.Fprintln(w, copytext.HowCalculated(kind))
			fmt.Fprintln(w)
			fmt.Fprintln(w, "FORMULA")
			fmt.Fprintln(w, copytext.Formula(kind))
			fmt.Fprintf(w, "Adjusted life expectancy: %d\n", result.AdjustedLifeExpectancyAge)
			fmt.Fprintln(w)
			fmt.Fprintln(w, "ASSUMPTIONS USED")
			for _, line := range copytext.AssumptionsUsed(result.Assumptions) {
				fmt.Fprintf(w, "• %s\n", line)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, copytext.DetailsFooter)
			return nil
		}),
	}
	addAssumptionFlags(cmd)
	return cmd
}
