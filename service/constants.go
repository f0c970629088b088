package service

import "time"

const (
	MaxPrincipal   = 1_000_000_000_000.0 // 1 trillion
	MaxPayment     = 1_000_000_000.0     // per month
	MaxRatePercent = 1000.0              // 1000% per year
	MaxYears       = 100
	MaxFrequency   = 8760 // hourly compounding

	// Input defaults used when the service runs in lenient mode.
	DefaultPrincipal      = 100_000.0
	DefaultMonthlyPayment = 10_000.0
	DefaultRatePercent    = 8.0
	DefaultYears          = 10

	DefaultCacheTTL       = 24 * time.Hour
	DefaultCurrencySymbol = "$"
)
