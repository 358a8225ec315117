package calculator

import (
	"github.com/iwvelando/roi-calculator/pkg/constants"
	"github.com/iwvelando/roi-calculator/pkg/mathutil"
)

// Suggestion is the advisory SaaS pricing derived from department revenue.
type Suggestion struct {
	Percentage             float64 `json:"percentage"`
	RevenueShareEquivalent float64 `json:"revenueShareEquivalent"`
	Fee                    float64 `json:"fee"`
}

// MetricSet holds every figure derived from a FieldSet.
type MetricSet struct {
	SuggestedSaaSPercentage float64 `json:"suggestedSaaSPercentage"`
	RevenueShareEquivalent  float64 `json:"revenueShareEquivalent"`
	SuggestedSaaSFee        float64 `json:"suggestedSaaSFee"`
	TotalHours              float64 `json:"totalHours"`
	LaborSavings            float64 `json:"laborSavings"`
	AdditionalRevenue       float64 `json:"additionalRevenue"`
	SoftwareSavings         float64 `json:"softwareSavings"`
	TotalAnnualValue        float64 `json:"totalAnnualValue"`
	NetValue                float64 `json:"netValue"`
	ROI                     float64 `json:"roi"`
	FiveYearValue           float64 `json:"fiveYearValue"`
	PaybackMonths           float64 `json:"paybackMonths"`

	// ShowResults gates the results panel: true once revenue or the SaaS
	// fee is positive.
	ShowResults bool `json:"showResults"`
}

// SuggestSaaS prices the SaaS fee as a discounted share of revenue.
func SuggestSaaS(revenue float64) Suggestion {
	percentage := constants.StandardRevenueSharePercent
	if revenue >= constants.LargeDepartmentRevenue {
		percentage = constants.LargeRevenueSharePercent
	}
	share := mathutil.Finite(mathutil.ApplyPercentage(revenue, percentage))
	return Suggestion{
		Percentage:             percentage,
		RevenueShareEquivalent: share,
		Fee:                    mathutil.Finite(mathutil.RoundHalfUp(share * constants.SaaSDiscountFactor)),
	}
}

// Derive computes the projections for fields. It is pure and total: every
// output is finite, and ratios guarded by a non-positive denominator are 0.
func Derive(fields FieldSet) MetricSet {
	currentRevenue := fields.Number(CurrentRevenue)
	annualSaaS := fields.Number(AnnualSaaS)
	hoursPerStaff := fields.Number(HoursPerStaff)
	numberOfStaff := fields.Number(NumberOfStaff)
	annualSalary := fields.Number(AnnualSalary)
	revenueGrowth := fields.Number(RevenueGrowth)
	currentSoftwareCost := fields.Number(CurrentSoftwareCost)

	suggestion := SuggestSaaS(currentRevenue)

	totalHours := hoursPerStaff * numberOfStaff * constants.WeeksPerYear
	laborSavings := (hoursPerStaff * constants.WeeksPerYear / constants.AnnualWorkHours) * numberOfStaff * annualSalary
	additionalRevenue := mathutil.ApplyPercentage(currentRevenue, revenueGrowth)
	softwareSavings := currentSoftwareCost - annualSaaS
	totalAnnualValue := laborSavings + additionalRevenue + softwareSavings
	netValue := totalAnnualValue - annualSaaS

	roi := mathutil.SafeRatio(netValue, annualSaaS) * constants.PercentageMultiplier
	fiveYearValue := totalAnnualValue*constants.ProjectionYears - annualSaaS*constants.ProjectionYears

	var paybackMonths float64
	if mathutil.IsPositive(annualSaaS) && mathutil.IsPositive(totalAnnualValue) {
		paybackMonths = annualSaaS / totalAnnualValue * constants.MonthsPerYear
	}

	return MetricSet{
		SuggestedSaaSPercentage: suggestion.Percentage,
		RevenueShareEquivalent:  suggestion.RevenueShareEquivalent,
		SuggestedSaaSFee:        suggestion.Fee,
		TotalHours:              mathutil.Finite(totalHours),
		LaborSavings:            mathutil.Finite(laborSavings),
		AdditionalRevenue:       mathutil.Finite(additionalRevenue),
		SoftwareSavings:         mathutil.Finite(softwareSavings),
		TotalAnnualValue:        mathutil.Finite(totalAnnualValue),
		NetValue:                mathutil.Finite(netValue),
		ROI:                     mathutil.Finite(roi),
		FiveYearValue:           mathutil.Finite(fiveYearValue),
		PaybackMonths:           mathutil.Finite(paybackMonths),
		ShowResults:             currentRevenue > 0 || annualSaaS > 0,
	}
}
