package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/countdown/internal/copytext"
)

// MarkdownFormatter renders the report as a Markdown document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "# Existential Countdown")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "_%s_\n\n", r.Prompt)

	fmt.Fprintln(&buf, "| Counter | Value |")
	fmt.Fprintln(&buf, "|---|---:|")
	for _, line := range r.Counters {
		fmt.Fprintf(&buf, "| %s | %s |\n", mdEscape(line.Title), copytext.FormatCount(line.Value))
	}
	fmt.Fprintln(&buf)

	for _, line := range r.Counters {
		fmt.Fprintf(&buf, "## %s\n\n", line.Title)
		fmt.Fprintf(&buf, "%s\n\n", line.HowCalculated)
		fmt.Fprintf(&buf, "`%s`\n\n", line.Formula)
	}

	fmt.Fprintln(&buf, "## Assumptions used")
	fmt.Fprintln(&buf)
	for _, s := range r.AssumptionsUsed {
		fmt.Fprintf(&buf, "- %s\n", s)
	}
	fmt.Fprintln(&buf)

	if len(r.Items) > 0 {
		fmt.Fprintln(&buf, "## Assumptions base")
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "| Item | Value | Unit |")
		fmt.Fprintln(&buf, "|---|---:|---|")
		for _, item := range r.Items {
			fmt.Fprintf(&buf, "| %s | %s | %s |\n", mdEscape(item.Label), copytext.FormatCount(item.Value), mdEscape(item.Unit))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "> %s\n", r.Footer)
	return buf.Bytes(), nil
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
