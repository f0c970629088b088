package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		symbol string
		want   string
	}{
		{12345.67, "¥", "¥12,345.67"},
		{0, "$", "$0.00"},
		{999.999, "$", "$1,000.00"},
		{1234567.891, "$", "$1,234,567.89"},
		{123456, "", "123,456.00"},
		{-2500.5, "$", "-$2,500.50"},
		{999_999_999_999_999, "$", "$999,999,999,999,999.00"},
		{2e15, "$", "$2000000000000000.00"},
		{-3e18, "€", "-€3000000000000000000.00"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatCurrency(tc.amount, tc.symbol))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "123.46%", FormatPercentage(123.456))
	assert.Equal(t, "0.00%", FormatPercentage(0))
	assert.Equal(t, "8.00%", FormatPercentage(8))
}
