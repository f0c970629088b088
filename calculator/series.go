package calculator

import "invest-agent/domain"

// LumpSumSeries returns one snapshot per year, 0 through years inclusive.
func (c *Calculator) LumpSumSeries(
	principal, rate float64,
	years int,
	freq domain.CompoundFrequency,
) ([]domain.AnnualSnapshot, error) {

	if err := validate("principal", principal, rate, years, freq); err != nil {
		return nil, err
	}

	series := make([]domain.AnnualSnapshot, 0, years+1)
	for y := 0; y <= years; y++ {
		value := lumpSumValue(principal, rate, y, freq)
		series = append(series, domain.AnnualSnapshot{
			Year:            y,
			Value:           value,
			PrincipalToDate: principal,
			InterestToDate:  value - principal,
		})
	}
	return series, nil
}

// ContributionSeries replays the monthly simulation and snapshots it at every
// year boundary, so the last entry matches RegularContribution exactly.
func (c *Calculator) ContributionSeries(
	payment, rate float64,
	years int,
	freq domain.CompoundFrequency,
) ([]domain.AnnualSnapshot, error) {

	if err := validate("periodic_payment", payment, rate, years, freq); err != nil {
		return nil, err
	}

	series := make([]domain.AnnualSnapshot, 0, years+1)
	series = append(series, domain.AnnualSnapshot{Year: 0})

	useShortcut := c.AnnuityShortcut && freq == domain.Monthly
	sim := newSimulation(payment, rate, freq)
	for y := 1; y <= years; y++ {
		var value float64
		if useShortcut {
			value = annuityDue(payment, rate/12, y*monthsPerYear)
		} else {
			sim.run(monthsPerYear)
			value = sim.value
		}

		principal := contributedPrincipal(payment, y)
		series = append(series, domain.AnnualSnapshot{
			Year:            y,
			Value:           value,
			PrincipalToDate: principal,
			InterestToDate:  value - principal,
		})
	}
	return series, nil
}
