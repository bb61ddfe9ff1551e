package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/countdown/internal/copytext"
)

// ConsoleFormatter prints the counters, the factors and the valued catalog as plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "EXISTENTIAL COUNTDOWN")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, r.Prompt)
	fmt.Fprintln(&buf)

	for _, line := range r.Counters {
		fmt.Fprintf(&buf, "%-22s %12s\n", line.Title, copytext.FormatCount(line.Value))
		fmt.Fprintf(&buf, "  %s\n", line.Subtext)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Adjusted life expectancy: %d (%d years, %s weeks left)\n",
		r.AdjustedLifeExpectancyAge, r.RemainingYears, copytext.FormatCount(r.RemainingWeeks))
	fmt.Fprintf(&buf, "Health profile: %s. %s\n", r.HealthProfile.Label, r.HealthProfile.Description)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "FACTORS")
	fmt.Fprintln(&buf, strings.Repeat("-", 60))
	for _, f := range r.Factors {
		fmt.Fprintf(&buf, "%-18s %6s  [%s, %s]\n", f.Name, f.Value.StringFixed(factorPlaces), f.Min.String(), f.Max.String())
	}

	if len(r.Items) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "ASSUMPTIONS BASE")
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		for _, item := range r.Items {
			fmt.Fprintf(&buf, "%-44s %10s %s\n", item.Label, copytext.FormatCount(item.Value), item.Unit)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, r.Disclaimer)
	return buf.Bytes(), nil
}
