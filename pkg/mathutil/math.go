// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/roi-calculator/pkg/constants"
)

// Round rounds a value to the given number of decimals with halves going
// away from zero, so Round(0.25, 1) is 0.3 and Round(-2.5, 0) is -3.
func Round(val float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	scaled := val * scale
	if math.IsInf(scaled, 0) {
		return val
	}
	return math.Round(scaled) / scale
}

// RoundHalfUp rounds to the nearest integer with halves going towards
// positive infinity, so -2.5 becomes -2 and 2.5 becomes 3.
func RoundHalfUp(val float64) float64 {
	return math.Floor(val + 0.5)
}

// IsPositive checks if a value is strictly greater than zero.
func IsPositive(val float64) bool {
	return val > 0
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Finite returns val, or 0 when val is NaN or infinite.
func Finite(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// SafeRatio returns numerator/denominator when the denominator is positive
// and 0 otherwise.
func SafeRatio(numerator, denominator float64) float64 {
	if !IsPositive(denominator) {
		return 0
	}
	return numerator / denominator
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
