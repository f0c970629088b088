// Package calculator is the compounding engine. Every rate it accepts is a
// decimal fraction (0.08 for 8%); percent conversion belongs to callers.
package calculator

import (
	"fmt"
	"math"

	"invest-agent/domain"
)

// Calculator computes lump-sum and regular-contribution future values.
// The zero value is ready to use and safe for concurrent use.
type Calculator struct {
	// AnnuityShortcut lets monthly compounding use the closed-form annuity-due
	// instead of the month-by-month simulation. Other frequencies always simulate.
	AnnuityShortcut bool
}

// Horizon and frequency bounds. They keep years × 12 months and the
// month × frequency boundary arithmetic well inside int range.
const (
	MaxYears     = 1000
	MaxFrequency = 1_000_000
)

// New returns a Calculator that always runs the monthly simulation.
func New() *Calculator {
	return &Calculator{}
}

// LumpSum computes principal × (1 + rate/f)^(f × years).
func (c *Calculator) LumpSum(
	principal, rate float64,
	years int,
	freq domain.CompoundFrequency,
) (domain.LumpSumResult, error) {

	if err := validate("principal", principal, rate, years, freq); err != nil {
		return domain.LumpSumResult{}, err
	}

	futureValue := lumpSumValue(principal, rate, years, freq)
	interest := futureValue - principal

	return domain.LumpSumResult{
		Principal:         principal,
		FutureValue:       futureValue,
		TotalInterest:     interest,
		ReturnRatePercent: domain.ReturnRatePercent(interest, principal),
		Rate:              rate,
		Years:             years,
		Frequency:         freq,
	}, nil
}

// RegularContribution computes the value of a monthly payment deposited for
// years × 12 months under the given compounding frequency.
func (c *Calculator) RegularContribution(
	payment, rate float64,
	years int,
	freq domain.CompoundFrequency,
) (domain.RegularContributionResult, error) {

	if err := validate("periodic_payment", payment, rate, years, freq); err != nil {
		return domain.RegularContributionResult{}, err
	}

	var futureValue float64
	if c.AnnuityShortcut && freq == domain.Monthly {
		futureValue = annuityDue(payment, rate/12, years*monthsPerYear)
	} else {
		sim := newSimulation(payment, rate, freq)
		sim.run(years * monthsPerYear)
		futureValue = sim.value
	}

	totalPrincipal := contributedPrincipal(payment, years)
	interest := futureValue - totalPrincipal

	return domain.RegularContributionResult{
		PeriodicPayment:   payment,
		TotalPrincipal:    totalPrincipal,
		FutureValue:       futureValue,
		TotalInterest:     interest,
		ReturnRatePercent: domain.ReturnRatePercent(interest, totalPrincipal),
		Rate:              rate,
		Years:             years,
		Frequency:         freq,
	}, nil
}

func lumpSumValue(principal, rate float64, years int, freq domain.CompoundFrequency) float64 {
	if rate == 0 || years == 0 {
		return principal
	}
	f := float64(freq)
	return principal * math.Pow(1+rate/f, f*float64(years))
}

func contributedPrincipal(payment float64, years int) float64 {
	return payment * monthsPerYear * float64(years)
}

// annuityDue is the closed form of depositing before each period's growth.
func annuityDue(payment, periodRate float64, periods int) float64 {
	if periodRate == 0 {
		return payment * float64(periods)
	}
	growth := math.Pow(1+periodRate, float64(periods))
	return payment * (1 + periodRate) * (growth - 1) / periodRate
}

func validate(amountField string, amount, rate float64, years int, freq domain.CompoundFrequency) error {
	if err := nonNegative(amountField, amount); err != nil {
		return err
	}
	if err := nonNegative("rate", rate); err != nil {
		return err
	}
	if years < 0 {
		return &domain.InvalidParameterError{Field: "years", Value: float64(years), Reason: "must not be negative"}
	}
	if years > MaxYears {
		return &domain.InvalidParameterError{
			Field:  "years",
			Value:  float64(years),
			Reason: fmt.Sprintf("exceeds the maximum of %d years", MaxYears),
		}
	}
	if err := freq.Validate(); err != nil {
		return err
	}
	if freq > MaxFrequency {
		return &domain.InvalidParameterError{
			Field:  "frequency",
			Value:  float64(freq),
			Reason: fmt.Sprintf("exceeds the maximum of %d periods per year", MaxFrequency),
		}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &domain.InvalidParameterError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &domain.InvalidParameterError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}
