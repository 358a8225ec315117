package format

import "github.com/iwvelando/roi-calculator/internal/calculator"

// Display holds the strings shown on the calculator's result cards.
type Display struct {
	ROI           string `json:"roi"`
	NetValue      string `json:"netValue"`
	PaybackMonths string `json:"paybackMonths"`
	FiveYearValue string `json:"fiveYearValue"`
}

// DisplayMetrics formats the headline figures of m for the result cards.
func DisplayMetrics(m calculator.MetricSet) Display {
	return Display{
		ROI:           Percent(m.ROI),
		NetValue:      Thousands(m.NetValue),
		PaybackMonths: Months(m.PaybackMonths),
		FiveYearValue: Thousands(m.FiveYearValue),
	}
}
