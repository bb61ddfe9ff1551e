package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"count":  copytext.FormatCount,
	"factor": func(d decimal.Decimal) string { return d.StringFixed(factorPlaces) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
