package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/domain"
)

func catalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the life assumption catalog",
		Long:  "List the catalog of everyday items and value them against the stored assumptions.",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every catalog item with its remaining count",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			result := a.calc.Evaluate(a.repo.LoadAssumptions(cmd.Context()))

			idWidth := len("ID")
			for _, iv := range result.Items {
				idWidth = max(idWidth, len(iv.Item.ID))
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-*s  %-36s %14s  %s\n", idWidth, "ID", "LABEL", "REMAINING", "UNIT")
			fmt.Fprintln(w, strings.Repeat("-", idWidth+2+36+1+14+2+12))
			for _, iv := range result.Items {
				fmt.Fprintf(w, "%-*s  %-36s %14s  %s\n",
					idWidth, iv.Item.ID, truncate(iv.Item.Label, 36), copytext.FormatCount(iv.Value), iv.Item.Unit)
			}
			fmt.Fprintf(w, "\n%d items\n", len(result.Items))
			return nil
		}),
	}

	showItemCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			item, ok := a.calc.Catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("unknown catalog item %q (see 'countdown catalog list')", args[0])
			}
			result := a.calc.EvaluateItems(a.repo.LoadAssumptions(cmd.Context()), []domain.LifeAssumption{item})
			iv := result.Items[0]

			tags := make([]string, len(item.AffectedBy))
			for i, t := range item.AffectedBy {
				tags[i] = string(t)
			}
			affected := strings.Join(tags, ", ")
			if affected == "" {
				affected = "nothing"
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, strings.ToUpper(item.Label))
			fmt.Fprintln(w, strings.Repeat("=", 50))
			fmt.Fprintf(w, "%s %s\n\n", copytext.FormatCount(iv.Value), item.Unit)
			fmt.Fprintln(w, item.Description)
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Calculation: %s\n", item.CalculationHint)
			fmt.Fprintf(w, "Affected by: %s\n", affected)
			fmt.Fprintf(w, "Base count × factor: %.1f × %.3f\n", iv.BaseCount, iv.Factor)
			return nil
		}),
	}

	catalogCmd.AddCommand(listCmd)
	catalogCmd.AddCommand(showItemCmd)
	return catalogCmd
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}
