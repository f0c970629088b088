package service

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Amounts at or above this are printed without grouping: a float64 no longer
// holds their cents, and humanize formats from a float64.
var maxGroupedAmount = decimal.NewFromInt(1_000_000_000_000_000)

// FormatCurrency renders amount with two decimals and thousands separators,
// e.g. FormatCurrency(1234567.891, "$") == "$1,234,567.89".
func FormatCurrency(amount float64, symbol string) string {
	d := decimal.NewFromFloat(amount).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	if d.GreaterThanOrEqual(maxGroupedAmount) {
		return sign + symbol + d.StringFixed(2)
	}

	rounded, _ := d.Float64()
	return sign + symbol + humanize.FormatFloat("#,###.##", rounded)
}

// FormatPercentage renders a percent value with two decimals: 123.456 -> "123.46%".
func FormatPercentage(percent float64) string {
	return decimal.NewFromFloat(percent).StringFixed(2) + "%"
}
