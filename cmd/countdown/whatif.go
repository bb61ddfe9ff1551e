package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/countdown/internal/compare"
	"github.com/rgehrsitz/countdown/internal/transform"
)

func whatifCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Compare the stored assumptions with what-if variants",
		Long: `Apply templates or individual transforms to the stored assumptions and
compare the resulting counters with the current ones. Each template becomes
its own variant; every --apply transform is combined into one custom variant.

Examples:
  countdown whatif --with quit_coffee,four_day_week
  countdown whatif --apply set_coffees:per_day=1 --apply age_by:years=5
  countdown whatif --list-templates`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			templates := transform.CreateBuiltInTemplates()

			listTemplates, _ := cmd.Flags().GetBool("list-templates")
			if listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(templates))
				return nil
			}

			with, _ := cmd.Flags().GetString("with")
			specs, _ := cmd.Flags().GetStringArray("apply")
			templateNames := transform.ParseTemplateList(with)
			if len(templateNames) == 0 && len(specs) == 0 {
				return fmt.Errorf("no variants given (use --with or --apply; see --list-templates)")
			}

			ctx := cmd.Context()
			current := a.repo.LoadAssumptions(ctx)

			var variants []compare.Variant
			for _, name := range templateNames {
				t, ok := templates.Get(name)
				if !ok {
					return fmt.Errorf("unknown template %q (see 'countdown whatif --list-templates')", name)
				}
				v, err := transform.ApplyTransforms(current, t.Transforms)
				if err != nil {
					return fmt.Errorf("template %s: %w", t.Name, err)
				}
				variants = append(variants, compare.Variant{Label: t.Name, Assumptions: v})
			}

			if len(specs) > 0 {
				registry := transform.NewTransformRegistry()
				transforms := make([]transform.AssumptionTransform, 0, len(specs))
				descriptions := make([]string, 0, len(specs))
				for _, spec := range specs {
					tr, err := registry.ParseTransformSpec(spec)
					if err != nil {
						return err
					}
					transforms = append(transforms, tr)
					descriptions = append(descriptions, tr.Description())
				}
				v, err := transform.ApplyTransforms(current, transforms)
				if err != nil {
					return err
				}
				variants = append(variants, compare.Variant{Label: strings.Join(descriptions, ", "), Assumptions: v})
			}

			comparisonSet, err := a.compare.CompareVariants(ctx, current, variants)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			return writeComparison(cmd, comparisonSet, outputFormat)
		}),
	}
	cmd.Flags().String("with", "", "Comma-separated list of templates")
	cmd.Flags().StringArray("apply", nil, "Transform spec name:key=value (repeatable)")
	cmd.Flags().Bool("list-templates", false, "List the built-in templates and exit")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	return cmd
}
