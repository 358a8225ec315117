// Package calculator holds the ROI calculator form state and the pure
// derivation of financial projections from it.
package calculator

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Field identifies one input on the calculator form. The identifiers are
// shared by HTML form names, JSON keys and YAML keys.
type Field string

// Calculator form fields.
const (
	DepartmentName      Field = "departmentName"
	CurrentRevenue      Field = "currentRevenue"
	CurrentSoftwareCost Field = "currentSoftwareCost"
	HoursPerStaff       Field = "hoursPerStaff"
	NumberOfStaff       Field = "numberOfStaff"
	AnnualSalary        Field = "annualSalary"
	AnnualSaaS          Field = "annualSaaS"
	RevenueGrowth       Field = "revenueGrowth"
)

var allFields = []Field{
	DepartmentName,
	CurrentRevenue,
	CurrentSoftwareCost,
	HoursPerStaff,
	NumberOfStaff,
	AnnualSalary,
	AnnualSaaS,
	RevenueGrowth,
}

// Fields returns every form field in page order.
func Fields() []Field {
	return append([]Field(nil), allFields...)
}

// ParseField maps an identifier to its Field.
func ParseField(name string) (Field, bool) {
	for _, f := range allFields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// IsText reports whether the field holds free text rather than a number.
func (f Field) IsText() bool {
	return f == DepartmentName
}

// Label is the human-readable caption shown next to the field.
func (f Field) Label() string {
	switch f {
	case DepartmentName:
		return "Department Name (Optional)"
	case CurrentRevenue:
		return "Annual Department Revenue"
	case CurrentSoftwareCost:
		return "Current Software Costs (Annual)"
	case HoursPerStaff:
		return "Hours Per Staff Per Week on Manual Tasks"
	case NumberOfStaff:
		return "Number of Staff Members"
	case AnnualSalary:
		return "Average Admin Annual Salary"
	case AnnualSaaS:
		return "Annual SaaS Fee"
	case RevenueGrowth:
		return "Expected Revenue Growth (%)"
	}
	return string(f)
}

// FieldSet is the current state of the calculator form. It is a value
// type: Apply returns a new FieldSet and never mutates the receiver.
type FieldSet struct {
	values [8]string
}

func (f Field) index() int {
	for i, candidate := range allFields {
		if candidate == f {
			return i
		}
	}
	return -1
}

// Value returns the raw string held for a field, or "" for unknown fields.
func (fs FieldSet) Value(field Field) string {
	idx := field.index()
	if idx < 0 {
		return ""
	}
	return fs.values[idx]
}

// Number parses a field as a floating point number, defaulting to zero
// when the field is empty or unparseable.
func (fs FieldSet) Number(field Field) float64 {
	return ParseNumber(fs.Value(field))
}

// Apply attempts an edit. It returns the updated FieldSet and true when
// the candidate is accepted, or the unchanged FieldSet and false.
func (fs FieldSet) Apply(field Field, candidate string) (FieldSet, bool) {
	idx := field.index()
	if idx < 0 || !Accept(field, candidate) {
		return fs, false
	}
	fs.values[idx] = candidate
	return fs, true
}

// Values returns the field values keyed by identifier.
func (fs FieldSet) Values() map[string]string {
	out := make(map[string]string, len(allFields))
	for i, f := range allFields {
		out[string(f)] = fs.values[i]
	}
	return out
}

// FieldSetFromValues applies every known entry of values to an empty
// FieldSet in page order. Unknown keys are ignored; the fields whose
// values were rejected are returned alongside the result.
func FieldSetFromValues(values map[string]string) (FieldSet, []Field) {
	var (
		fs       FieldSet
		rejected []Field
	)
	for _, f := range allFields {
		candidate, ok := values[string(f)]
		if !ok {
			continue
		}
		var accepted bool
		if fs, accepted = fs.Apply(f, candidate); !accepted {
			rejected = append(rejected, f)
		}
	}
	return fs, rejected
}

// Accept reports whether candidate may be stored in field: the free-text
// field takes anything, numeric fields take "" or a numeric string.
func Accept(field Field, candidate string) bool {
	if field.IsText() || candidate == "" {
		return true
	}
	return IsNumeric(candidate)
}

// IsNumeric is a lenient numeric test. Surrounding whitespace is ignored
// and a blank string counts as zero. Exponent forms such as "1e3" are
// accepted; infinities and NaN are not.
func IsNumeric(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	v, err := cast.ToFloat64E(trimmed)
	if err != nil {
		return false
	}
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ParseNumber converts s to a float, returning 0 for empty, unparseable or
// non-finite input.
func ParseNumber(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	v, err := cast.ToFloat64E(trimmed)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
