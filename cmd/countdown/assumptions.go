package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/countdown/internal/config"
	"github.com/rgehrsitz/countdown/internal/copytext"
)

func assumptionsCmd() *cobra.Command {
	assumptionsCmd := &cobra.Command{
		Use:   "assumptions",
		Short: "Show or edit the stored assumptions",
		Long: `Manage the assumption model every command evaluates.

Examples:
  countdown assumptions show
  countdown assumptions set --age 42 --tone cosmic
  countdown assumptions reset`,
	}

	showAssumptionsCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored assumptions",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			assumptions := a.repo.LoadAssumptions(cmd.Context())
			outputFormat, _ := cmd.Flags().GetString("format")

			switch strings.ToLower(outputFormat) {
			case "yaml", "":
				data, err := yaml.Marshal(assumptions)
				if err != nil {
					return fmt.Errorf("failed to format YAML: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err

			case "json":
				data, err := json.MarshalIndent(assumptions, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil

			case "text":
				for _, line := range copytext.AssumptionsUsed(assumptions) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tone: %s\nUnit mode: %s\n", assumptions.Tone, assumptions.UnitMode)
				return nil

			default:
				return fmt.Errorf("unknown output format: %s (valid: yaml, json, text)", outputFormat)
			}
		}),
	}
	showAssumptionsCmd.Flags().StringP("format", "f", "yaml", "Output format (yaml, json, text)")

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change stored assumptions; omitted flags keep their values",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			assumptions, err := applyAssumptionFlags(cmd, a.repo.LoadAssumptions(ctx))
			if err != nil {
				return err
			}
			if err := a.repo.SaveAssumptions(ctx, assumptions); err != nil {
				return fmt.Errorf("failed to save assumptions: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), copytext.AssumptionsUpdated)
			return nil
		}),
	}
	addAssumptionFlags(setCmd)

	resetAssumptionsCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default assumptions; snapshots and settings are kept",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.repo.ClearAssumptions(cmd.Context()); err != nil {
				return fmt.Errorf("failed to reset assumptions: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Assumptions reset to defaults.")
			return nil
		}),
	}

	assumptionsCmd.AddCommand(showAssumptionsCmd)
	assumptionsCmd.AddCommand(setCmd)
	assumptionsCmd.AddCommand(resetAssumptionsCmd)
	return assumptionsCmd
}

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the stored assumptions, or everything with --all",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			all, _ := cmd.Flags().GetBool("all")
			if !all {
				if err := a.repo.ClearAssumptions(ctx); err != nil {
					return fmt.Errorf("failed to reset assumptions: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Assumptions reset to defaults.")
				return nil
			}
			if err := a.repo.ResetAll(ctx); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Assumptions, snapshots and settings cleared.")
			return nil
		}),
	}
	cmd.Flags().Bool("all", false, "Also clear snapshots and settings")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			parser := config.NewInputParser()
			if _, err := parser.LoadFromFile(inputFile); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", inputFile)
			return nil
		},
	}
}
