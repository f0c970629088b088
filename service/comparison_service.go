package service

import (
	"context"

	"invest-agent/domain"
)

type ComparisonService struct {
	investments *InvestmentService
}

func NewComparisonService(investments *InvestmentService) *ComparisonService {
	return &ComparisonService{investments: investments}
}

// Compare runs a lump-sum deposit and a monthly contribution over the same
// rate, duration and compounding frequency, year by year.
func (s *ComparisonService) Compare(
	ctx context.Context,
	input domain.ComparisonInput,
) (domain.ComparisonResult, error) {

	lump, err := s.investments.CalculateLumpSum(ctx, domain.LumpSumInput{
		Principal:   input.Principal,
		RatePercent: input.RatePercent,
		Years:       input.Years,
		Frequency:   input.Frequency,
	})
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	regular, err := s.investments.CalculateRegularContribution(ctx, domain.RegularContributionInput{
		MonthlyPayment: input.MonthlyPayment,
		RatePercent:    input.RatePercent,
		Years:          input.Years,
		Frequency:      input.Frequency,
	})
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	// Defaults may have been applied independently to each side.
	n := min(len(lump.Series), len(regular.Series))
	points := make([]domain.ComparisonPoint, 0, n)
	for i := 0; i < n; i++ {
		l, r := lump.Series[i].Value, regular.Series[i].Value
		points = append(points, domain.ComparisonPoint{
			Year:              lump.Series[i].Year,
			LumpSumValue:      l,
			ContributionValue: r,
			Difference:        l - r,
		})
	}

	return domain.ComparisonResult{
		LumpSum:      lump.Result,
		Contribution: regular.Result,
		Points:       points,
		Winner:       winner(lump.Result.FutureValue, regular.Result.FutureValue),
	}, nil
}

func winner(lumpSum, contribution float64) string {
	switch {
	case lumpSum > contribution:
		return "lump_sum"
	case contribution > lumpSum:
		return "contribution"
	}
	return "tie"
}
