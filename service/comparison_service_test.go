package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invest-agent/domain"
)

func TestCompare_YearByYear(t *testing.T) {
	svc := NewComparisonService(newTestService(nil, Options{}))

	result, err := svc.Compare(context.Background(), domain.ComparisonInput{
		Principal:      120000,
		MonthlyPayment: 1000,
		RatePercent:    8,
		Years:          10,
		Frequency:      domain.NamedFrequency("monthly"),
	})
	require.NoError(t, err)

	require.Len(t, result.Points, 11)
	assert.Equal(t, 120000.0, result.Points[0].LumpSumValue)
	assert.Equal(t, 0.0, result.Points[0].ContributionValue)

	last := result.Points[10]
	assert.Equal(t, result.LumpSum.FutureValue, last.LumpSumValue)
	assert.Equal(t, result.Contribution.FutureValue, last.ContributionValue)
	assert.InDelta(t, last.LumpSumValue-last.ContributionValue, last.Difference, 1e-9)

	// Same money invested up front always grows more.
	assert.Equal(t, "lump_sum", result.Winner)
}

func TestCompare_PropagatesInvalidInput(t *testing.T) {
	svc := NewComparisonService(newTestService(nil, Options{}))

	_, err := svc.Compare(context.Background(), domain.ComparisonInput{
		Principal:      1000,
		MonthlyPayment: -1,
		RatePercent:    8,
		Years:          10,
	})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidParameter(err))
}

func TestWinner(t *testing.T) {
	assert.Equal(t, "lump_sum", winner(2, 1))
	assert.Equal(t, "contribution", winner(1, 2))
	assert.Equal(t, "tie", winner(1, 1))
}
