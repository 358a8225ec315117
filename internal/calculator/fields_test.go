package calculator

import (
	"testing"
)

func TestAcceptNumericFields(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		expected  bool
	}{
		{"Empty string", "", true},
		{"Integer", "1000000", true},
		{"Decimal", "12.5", true},
		{"Negative", "-5", true},
		{"Exponent", "1e3", true},
		{"Leading decimal point", ".5", true},
		{"Surrounding whitespace", " 42 ", true},
		{"Whitespace only", "   ", true},
		{"Letters", "abc", false},
		{"Trailing letters", "12abc", false},
		{"Currency symbol", "$100", false},
		{"Thousands separator", "1,000", false},
		{"Lone decimal point", ".", false},
		{"Lone minus", "-", false},
		{"Infinity", "Infinity", false},
		{"Inf", "Inf", false},
		{"NaN", "NaN", false},
		{"Overflowing exponent", "1e400", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Accept(CurrentRevenue, tt.candidate); result != tt.expected {
				t.Errorf("Accept(%s, %q) = %v, expected %v", CurrentRevenue, tt.candidate, result, tt.expected)
			}
		})
	}
}

func TestAcceptDepartmentNameTakesAnything(t *testing.T) {
	for _, candidate := range []string{"", "Parks & Rec", "abc123", "NaN", "   "} {
		if !Accept(DepartmentName, candidate) {
			t.Errorf("Accept(%s, %q) = false, expected true", DepartmentName, candidate)
		}
	}
}

func TestApplyRejectedEditLeavesFieldUnchanged(t *testing.T) {
	numeric := []Field{CurrentRevenue, CurrentSoftwareCost, HoursPerStaff, NumberOfStaff, AnnualSalary, AnnualSaaS, RevenueGrowth}
	rejected := []string{"abc", "12x", "$5", "1,000", "--1", "one"}

	for _, field := range numeric {
		start, ok := FieldSet{}.Apply(field, "250")
		if !ok {
			t.Fatalf("seed edit for %s was rejected", field)
		}
		for _, candidate := range rejected {
			next, accepted := start.Apply(field, candidate)
			if accepted {
				t.Errorf("Apply(%s, %q) accepted, expected rejection", field, candidate)
			}
			if next != start {
				t.Errorf("Apply(%s, %q) changed state: got %q, expected %q", field, candidate, next.Value(field), start.Value(field))
			}
		}
	}
}

func TestApplyAcceptedEditStoresCandidate(t *testing.T) {
	candidates := []string{"", "0", "15000", "2.75", "1e3", "-40"}

	for _, field := range Fields() {
		for _, candidate := range candidates {
			next, accepted := FieldSet{}.Apply(field, "7")
			if !accepted {
				t.Fatalf("seed edit for %s was rejected", field)
			}
			next, accepted = next.Apply(field, candidate)
			if !accepted {
				t.Errorf("Apply(%s, %q) rejected, expected acceptance", field, candidate)
			}
			if got := next.Value(field); got != candidate {
				t.Errorf("Apply(%s, %q) stored %q", field, candidate, got)
			}
		}
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	original, _ := FieldSet{}.Apply(AnnualSalary, "40000")
	updated, ok := original.Apply(AnnualSalary, "50000")
	if !ok {
		t.Fatal("expected edit to be accepted")
	}
	if original.Value(AnnualSalary) != "40000" {
		t.Errorf("receiver mutated: %q", original.Value(AnnualSalary))
	}
	if updated.Value(AnnualSalary) != "50000" {
		t.Errorf("expected updated value 50000, got %q", updated.Value(AnnualSalary))
	}
}

func TestApplyUnknownField(t *testing.T) {
	fs, ok := FieldSet{}.Apply(Field("bogus"), "10")
	if ok {
		t.Fatal("expected unknown field to be rejected")
	}
	if fs != (FieldSet{}) {
		t.Fatal("expected state to be unchanged")
	}
	if v := fs.Value(Field("bogus")); v != "" {
		t.Errorf("expected empty value for unknown field, got %q", v)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Empty", "", 0},
		{"Whitespace", "  ", 0},
		{"Integer", "5000000", 5000000},
		{"Decimal", "0.25", 0.25},
		{"Exponent", "1e3", 1000},
		{"Padded", " 12 ", 12},
		{"Garbage", "abc", 0},
		{"Infinity", "Inf", 0},
		{"NaN", "NaN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ParseNumber(tt.input); result != tt.expected {
				t.Errorf("ParseNumber(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		parsed, ok := ParseField(string(f))
		if !ok || parsed != f {
			t.Errorf("ParseField(%q) = %q, %v", f, parsed, ok)
		}
	}
	if _, ok := ParseField("CurrentRevenue"); ok {
		t.Error("expected identifiers to be case sensitive")
	}
}

func TestFieldSetFromValues(t *testing.T) {
	fs, rejected := FieldSetFromValues(map[string]string{
		"departmentName": "Parks",
		"currentRevenue": "1000000",
		"annualSaaS":     "ten thousand",
		"unknown":        "42",
	})

	if fs.Value(DepartmentName) != "Parks" {
		t.Errorf("expected department name Parks, got %q", fs.Value(DepartmentName))
	}
	if fs.Value(CurrentRevenue) != "1000000" {
		t.Errorf("expected revenue 1000000, got %q", fs.Value(CurrentRevenue))
	}
	if fs.Value(AnnualSaaS) != "" {
		t.Errorf("expected rejected SaaS fee to stay empty, got %q", fs.Value(AnnualSaaS))
	}
	if len(rejected) != 1 || rejected[0] != AnnualSaaS {
		t.Errorf("expected only annualSaaS rejected, got %v", rejected)
	}

	values := fs.Values()
	if len(values) != len(Fields()) {
		t.Errorf("expected %d values, got %d", len(Fields()), len(values))
	}
	if values["currentRevenue"] != "1000000" {
		t.Errorf("Values() lost currentRevenue: %v", values)
	}
}

func TestFieldLabels(t *testing.T) {
	for _, f := range Fields() {
		if f.Label() == string(f) {
			t.Errorf("field %s has no label", f)
		}
	}
}
