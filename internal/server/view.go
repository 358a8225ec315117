package server

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/iwvelando/roi-calculator/internal/calculator"
	"github.com/iwvelando/roi-calculator/pkg/constants"
	"github.com/iwvelando/roi-calculator/pkg/format"
	"go.uber.org/zap"
)

type viewEngine struct {
	templates *template.Template
}

func newViewEngine() (*viewEngine, error) {
	funcMap := template.FuncMap{
		"money": func(f calculator.Field) bool { return moneyFields[f] },
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &viewEngine{templates: tpl}, nil
}

// render executes the named template into a buffer so a failed render never
// leaves a partial page on the wire.
func (e *viewEngine) render(w http.ResponseWriter, name string, data interface{}) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

type inputView struct {
	Field   calculator.Field
	Name    string
	Label   string
	Value   string
	Hint    string
	Numeric bool
}

// breakdownLine is one row of the annual impact table. Key names the
// row for the page script.
type breakdownLine struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Text   string  `json:"text"`
	Total  bool    `json:"total,omitempty"`
}

type pageData struct {
	Title     string
	Heading   string
	Current   []inputView
	Future    []inputView
	Gains     []string
	Metrics   calculator.MetricSet
	Display   format.Display
	Breakdown []breakdownLine
	DemoURL   string
	Version   string
}

var fieldHints = map[calculator.Field]string{
	calculator.AnnualSaaS:    "All-inclusive: No hidden fees or surprise costs",
	calculator.RevenueGrowth: "Typical clients see 8-15% growth from online registration & payments",
}

var moneyFields = map[calculator.Field]bool{
	calculator.CurrentRevenue:      true,
	calculator.CurrentSoftwareCost: true,
	calculator.AnnualSalary:        true,
	calculator.AnnualSaaS:          true,
}

var gains = []string{
	"24/7 online registration & payments",
	"Automated waitlists & communications",
	"Mobile-friendly resident experience",
	"Real-time reporting & analytics",
	"Reduce no-shows with reminders",
	"Streamline facility scheduling",
}

func newInputView(fields calculator.FieldSet, f calculator.Field) inputView {
	return inputView{
		Field:   f,
		Name:    string(f),
		Label:   f.Label(),
		Value:   fields.Value(f),
		Hint:    fieldHints[f],
		Numeric: !f.IsText(),
	}
}

func impactHeading(department string) string {
	if department == "" {
		return "Projected Annual Impact"
	}
	return "Projected Annual Impact for " + department
}

func newBreakdown(fields calculator.FieldSet, metrics calculator.MetricSet) []breakdownLine {
	lines := []breakdownLine{
		{Key: "laborSavings", Label: "Staff time savings", Amount: metrics.LaborSavings},
		{Key: "additionalRevenue", Label: "Additional revenue", Amount: metrics.AdditionalRevenue},
		{Key: "softwareSavings", Label: "Software cost savings", Amount: metrics.SoftwareSavings},
		{Key: "totalAnnualValue", Label: "Total annual value", Amount: metrics.TotalAnnualValue, Total: true},
		{Key: "annualSaaS", Label: "Annual SaaS fee", Amount: -fields.Number(calculator.AnnualSaaS)},
		{Key: "netValue", Label: "Year 1 net value", Amount: metrics.NetValue, Total: true},
	}
	for i := range lines {
		lines[i].Text = format.Currency(lines[i].Amount)
	}
	return lines
}

func newPageData(fields calculator.FieldSet, version string) pageData {
	metrics := calculator.Derive(fields)
	data := pageData{
		Title:     "Calculate Your ROI with Kaizen Labs",
		Heading:   impactHeading(fields.Value(calculator.DepartmentName)),
		Gains:     gains,
		Metrics:   metrics,
		Display:   format.DisplayMetrics(metrics),
		Breakdown: newBreakdown(fields, metrics),
		DemoURL:   constants.DemoBookingURL,
		Version:   version,
	}

	for _, f := range calculator.Fields() {
		switch f {
		case calculator.AnnualSaaS, calculator.RevenueGrowth:
			data.Future = append(data.Future, newInputView(fields, f))
		default:
			data.Current = append(data.Current, newInputView(fields, f))
		}
	}
	return data
}

// fieldValues takes the first value submitted for each calculator field.
func fieldValues(form url.Values) map[string]string {
	values := make(map[string]string)
	for _, f := range calculator.Fields() {
		if candidates, ok := form[string(f)]; ok && len(candidates) > 0 {
			values[string(f)] = candidates[0]
		}
	}
	return values
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePage"

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse form",
			zap.String("op", op),
			zap.Error(err),
		)
		status := http.StatusBadRequest
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	fields, rejected := calculator.FieldSetFromValues(fieldValues(r.Form))
	if len(rejected) > 0 {
		names := make([]string, 0, len(rejected))
		for _, f := range rejected {
			names = append(names, string(f))
		}
		h.logger.Debug("dropped non-numeric inputs",
			zap.String("op", op),
			zap.Strings("fields", names),
		)
	}

	if err := h.view.render(w, "index.html", newPageData(fields, h.version)); err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", op),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
