// Package constants provides shared constants for the roi-calculator application.
package constants

// Staffing constants
const (
	// WeeksPerYear annualizes weekly hours
	WeeksPerYear = 52

	// AnnualWorkHours is the standard number of hours worked by one FTE in a year
	AnnualWorkHours = 2080

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// ProjectionYears is the horizon used for the multi-year value projection
	ProjectionYears = 5
)

// Pricing constants
const (
	// LargeDepartmentRevenue is the annual revenue at which the higher revenue share applies
	LargeDepartmentRevenue = 5000000.0

	// StandardRevenueSharePercent is the revenue share for departments below LargeDepartmentRevenue
	StandardRevenueSharePercent = 5.0

	// LargeRevenueSharePercent is the revenue share for departments at or above LargeDepartmentRevenue
	LargeRevenueSharePercent = 6.0

	// SaaSDiscountFactor converts a revenue share equivalent into a flat SaaS fee
	SaaSDiscountFactor = 0.7

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultEnvFile is the optional dotenv file read by the server binary
	DefaultEnvFile = ".env"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRequestsPerMinute is the default per-client request budget
	DefaultRequestsPerMinute = 300

	// DefaultReadTimeout is the default server read timeout
	DefaultReadTimeout = "15s"

	// DefaultWriteTimeout is the default server write timeout
	DefaultWriteTimeout = "15s"

	// DefaultShutdownTimeout bounds graceful shutdown
	DefaultShutdownTimeout = "10s"
)

// DemoBookingURL is the call-to-action target on the calculator page.
const DemoBookingURL = "https://www.kaizenlabs.co/book-a-demo/"
