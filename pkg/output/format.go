// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/roi-calculator/internal/calculator"
	"github.com/iwvelando/roi-calculator/pkg/format"
)

// Line is one labelled figure of a report.
type Line struct {
	Key   string
	Label string
	Value float64
	Text  string
}

// Lines lists every derived figure in report order.
func Lines(m calculator.MetricSet) []Line {
	return []Line{
		{"roi", "Annual ROI", m.ROI, format.Percent(m.ROI)},
		{"netValue", "Year 1 Net Value", m.NetValue, format.Currency(m.NetValue)},
		{"paybackMonths", "Payback Period (months)", m.PaybackMonths, format.Months(m.PaybackMonths)},
		{"fiveYearValue", "5-Year Value", m.FiveYearValue, format.Currency(m.FiveYearValue)},
		{"laborSavings", "Labor Savings", m.LaborSavings, format.Currency(m.LaborSavings)},
		{"additionalRevenue", "Additional Revenue", m.AdditionalRevenue, format.Currency(m.AdditionalRevenue)},
		{"softwareSavings", "Software Savings", m.SoftwareSavings, format.Currency(m.SoftwareSavings)},
		{"totalAnnualValue", "Total Annual Value", m.TotalAnnualValue, format.Currency(m.TotalAnnualValue)},
		{"totalHours", "Manual Hours Per Year", m.TotalHours, format.Number(m.TotalHours, 0)},
		{"suggestedSaaSPercentage", "Suggested Revenue Share (%)", m.SuggestedSaaSPercentage, format.Number(m.SuggestedSaaSPercentage, 0)},
		{"revenueShareEquivalent", "Revenue Share Equivalent", m.RevenueShareEquivalent, format.Currency(m.RevenueShareEquivalent)},
		{"suggestedSaaSFee", "Suggested SaaS Fee", m.SuggestedSaaSFee, format.WholeCurrency(m.SuggestedSaaSFee)},
	}
}

func title(fields calculator.FieldSet) string {
	if name := fields.Value(calculator.DepartmentName); name != "" {
		return name
	}
	return "your department"
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, fields calculator.FieldSet, m calculator.MetricSet) {
	_, _ = fmt.Fprintf(w, "--- ROI projection for %s ---\n", title(fields))
	if !m.ShowResults {
		_, _ = fmt.Fprintf(w, "Enter a department revenue or annual SaaS fee to see results.\n")
		return
	}
	for _, line := range Lines(m) {
		_, _ = fmt.Fprintf(w, "%-28s | %s\n", line.Label, line.Text)
	}
}

// CsvFormat writes comma-separated values with one metric per row.
func CsvFormat(w io.Writer, m calculator.MetricSet) {
	_, _ = fmt.Fprintf(w, `"metric","value"`+"\n")
	for _, line := range Lines(m) {
		_, _ = fmt.Fprintf(w, `"%s","%.2f"`+"\n", line.Key, line.Value)
	}
}

type jsonReport struct {
	Inputs  map[string]string    `json:"inputs"`
	Metrics calculator.MetricSet `json:"metrics"`
	Display format.Display       `json:"display"`
}

// JSONFormat writes the inputs, metrics and display strings as one JSON document.
func JSONFormat(w io.Writer, fields calculator.FieldSet, m calculator.MetricSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Inputs:  fields.Values(),
		Metrics: m,
		Display: format.DisplayMetrics(m),
	})
}
