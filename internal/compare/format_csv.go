package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Snapshot",
		"Type",
		"Timestamp",
		"Sundays",
		"Coffees",
		"Workdays",
		"Next Week",
		"Sundays Diff",
		"Sundays % Change",
		"Coffees Diff",
		"Coffees % Change",
		"Workdays Diff",
		"Workdays % Change",
		"Next Week Diff",
		"Next Week % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "snapshot")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	timestamp := ""
	if !result.Timestamp.IsZero() {
		timestamp = result.Timestamp.Format(time.RFC3339)
	}
	return []string{
		result.Label,
		rowType,
		timestamp,
		formatInt(result.Sundays),
		formatInt(result.Coffees),
		formatInt(result.Workdays),
		formatInt(result.NextWeek),
		result.SundaysDiff.Abs.StringFixed(0),
		result.SundaysDiff.Pct.StringFixed(2),
		result.CoffeesDiff.Abs.StringFixed(0),
		result.CoffeesDiff.Pct.StringFixed(2),
		result.WorkdaysDiff.Abs.StringFixed(0),
		result.WorkdaysDiff.Pct.StringFixed(2),
		result.NextWeekDiff.Abs.StringFixed(0),
		result.NextWeekDiff.Pct.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
