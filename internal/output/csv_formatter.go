package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter exports the headline counters and the valued catalog, one row each.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Type", "ID", "Label", "Value", "Unit", "Factor", "Affected By"}); err != nil {
		return nil, err
	}
	for _, line := range r.Counters {
		if err := w.Write([]string{"counter", string(line.Kind), line.Title, strconv.Itoa(line.Value), "", "", ""}); err != nil {
			return nil, err
		}
	}
	for _, item := range r.Items {
		tags := make([]string, len(item.AffectedBy))
		for i, t := range item.AffectedBy {
			tags[i] = string(t)
		}
		row := []string{
			"item",
			item.ID,
			item.Label,
			strconv.Itoa(item.Value),
			item.Unit,
			item.Factor.StringFixed(factorPlaces),
			strings.Join(tags, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
