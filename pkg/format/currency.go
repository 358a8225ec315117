// Package format renders calculator figures for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/roi-calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositive(math.Abs(amount), 2)
	if amount < 0 && formatted != "0.00" {
		return "-$" + formatted
	}
	return "$" + formatted
}

// WholeCurrency is Currency without cents (e.g., "$35,000").
func WholeCurrency(amount float64) string {
	formatted := formatPositive(math.Abs(amount), 0)
	if amount < 0 && formatted != "0" {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Thousands abbreviates an amount to whole thousands without separators
// (e.g., "$145K", "$2350K", "-$5K").
func Thousands(amount float64) string {
	formatted := fixed(math.Abs(amount)/1000, 0)
	if amount < 0 && formatted != "0" {
		return "-$" + formatted + "K"
	}
	return "$" + formatted + "K"
}

// Percent renders a percentage with no decimals or separators (e.g., "1450%").
func Percent(value float64) string {
	return signedFixed(value, 0) + "%"
}

// Months renders a duration in months with one decimal (e.g., "0.8").
func Months(value float64) string {
	return signedFixed(value, 1)
}

// Number renders a plain number with separators and the given decimals.
func Number(value float64, decimals int) string {
	return signed(value, decimals)
}

func signed(value float64, decimals int) string {
	formatted := formatPositive(math.Abs(value), decimals)
	if value < 0 && strings.Trim(formatted, "0.,") != "" {
		return "-" + formatted
	}
	return formatted
}

func formatPositive(value float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}

// signedFixed is fixed with a leading minus for values that do not round to zero.
func signedFixed(value float64, decimals int) string {
	formatted := fixed(math.Abs(value), decimals)
	if value < 0 && strings.Trim(formatted, "0.") != "" {
		return "-" + formatted
	}
	return formatted
}

// fixed renders a non-negative value with the given decimals, no grouping
// and halves rounded away from zero.
func fixed(value float64, decimals int) string {
	return strconv.FormatFloat(mathutil.Round(value, decimals), 'f', decimals, 64)
}
