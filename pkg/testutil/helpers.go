// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/roi-calculator/internal/calculator"
	"github.com/iwvelando/roi-calculator/pkg/mathutil"
)

// ReferenceValues returns the inputs of the worked example used across the
// test suites: a 1M revenue department paying a 10K fee.
func ReferenceValues() map[string]string {
	return map[string]string{
		"currentRevenue":      "1000000",
		"annualSaaS":          "10000",
		"hoursPerStaff":       "10",
		"numberOfStaff":       "5",
		"annualSalary":        "40000",
		"revenueGrowth":       "10",
		"currentSoftwareCost": "15000",
	}
}

// FieldSet builds a calculator form from values and fails the test if any
// value is rejected.
func FieldSet(t testing.TB, values map[string]string) calculator.FieldSet {
	t.Helper()
	fs, rejected := calculator.FieldSetFromValues(values)
	if len(rejected) > 0 {
		t.Fatalf("unexpected rejected fields: %v", rejected)
	}
	return fs
}

// AssertClose fails the test when got and expected differ by more than tolerance.
func AssertClose(t testing.TB, name string, got, expected, tolerance float64) {
	t.Helper()
	if !mathutil.WithinTolerance(got, expected, tolerance) {
		t.Errorf("%s = %v, expected %v", name, got, expected)
	}
}
