package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing the live model with snapshots
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SNAPSHOT COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base: %s\n", compSet.BaseLabel))
	sb.WriteString("\n")

	labelWidth := 16
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		labelWidth, "Snapshot",
		numWidth, "Sundays",
		numWidth, "Coffees",
		numWidth, "Workdays",
		numWidth, "Next week"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, labelWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, labelWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Label))
			sb.WriteString(tf.formatDelta("Sundays", alt.SundaysDiff))
			sb.WriteString(tf.formatDelta("Coffees", alt.CoffeesDiff))
			sb.WriteString(tf.formatDelta("Workdays", alt.WorkdaysDiff))
			sb.WriteString(tf.formatDelta("Next week", alt.NextWeekDiff))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Observations) > 0 {
		sb.WriteString("\nOBSERVATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, obs := range compSet.Observations {
			sb.WriteString(fmt.Sprintf("• %s\n", obs))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single row
func (tf *TableFormatter) formatRow(result *ComparisonResult, labelWidth, numWidth int, isBase bool) string {
	label := result.Label
	if isBase {
		label += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		labelWidth, tf.truncate(label, labelWidth),
		numWidth, tf.formatCount(decimal.NewFromInt(int64(result.Sundays))),
		numWidth, tf.formatCount(decimal.NewFromInt(int64(result.Coffees))),
		numWidth, tf.formatCount(decimal.NewFromInt(int64(result.Workdays))),
		numWidth, tf.formatCount(decimal.NewFromInt(int64(result.NextWeek))))
}

func (tf *TableFormatter) formatDelta(name string, d Delta) string {
	return fmt.Sprintf("  %-10s %s%s (%s%%)\n",
		name+":",
		tf.deltaSymbol(d.Abs),
		d.Abs.StringFixed(0),
		d.Pct.StringFixed(1))
}

// formatCount formats a count for display (in thousands)
func (tf *TableFormatter) formatCount(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a leading + for positive deltas; negatives carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary of the Sundays deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseLabel))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.SundaysDiff.Abs.IsZero() {
			change = tf.deltaSymbol(alt.SundaysDiff.Abs) + alt.SundaysDiff.Abs.StringFixed(0)
		}
		sb.WriteString(fmt.Sprintf("%s: %s Sundays", alt.Label, change))
	}

	return sb.String()
}
