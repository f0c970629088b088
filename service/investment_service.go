package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invest-agent/calculator"
	"invest-agent/domain"
	"invest-agent/repository"
)

type Options struct {
	// UseDefaults replaces zero-valued inputs with the Default* constants.
	UseDefaults    bool
	CacheTTL       time.Duration
	CurrencySymbol string
}

type InvestmentService struct {
	calc  *calculator.Calculator
	cache repository.CacheRepository
	log   zerolog.Logger
	opts  Options
}

// NewInvestmentService creates an InvestmentService. cache may be nil.
func NewInvestmentService(
	calc *calculator.Calculator,
	cache repository.CacheRepository,
	log zerolog.Logger,
	opts Options,
) *InvestmentService {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = DefaultCurrencySymbol
	}
	return &InvestmentService{
		calc:  calc,
		cache: cache,
		log:   log.With().Str("component", "investment_service").Logger(),
		opts:  opts,
	}
}

// CalculateLumpSum computes the result and yearly series of a single deposit.
func (s *InvestmentService) CalculateLumpSum(
	ctx context.Context,
	input domain.LumpSumInput,
) (domain.LumpSumReport, error) {

	if s.opts.UseDefaults {
		input = ApplyLumpSumDefaults(input)
	}
	freq := input.Frequency.Resolve()

	if err := checkLimits("principal", input.Principal, MaxPrincipal, input.RatePercent, input.Years, freq); err != nil {
		return domain.LumpSumReport{}, err
	}

	rate := percentToDecimal(input.RatePercent)
	key := s.cacheKey("lump", input.Principal, rate, input.Years, freq)

	var entry lumpSumEntry
	if !s.lookup(ctx, key, &entry) {
		result, err := s.calc.LumpSum(input.Principal, rate, input.Years, freq)
		if err != nil {
			return domain.LumpSumReport{}, err
		}
		series, err := s.calc.LumpSumSeries(input.Principal, rate, input.Years, freq)
		if err != nil {
			return domain.LumpSumReport{}, err
		}
		entry = lumpSumEntry{Result: result, Series: series}
		s.store(ctx, key, entry)
	}

	result := entry.Result
	report := domain.LumpSumReport{
		Result:    result,
		Series:    entry.Series,
		Formatted: s.format(result.Principal, result.FutureValue, result.TotalInterest, result.ReturnRatePercent),
	}

	s.log.Debug().
		Float64("principal", result.Principal).
		Float64("rate", rate).
		Int("years", result.Years).
		Int("frequency", int(freq)).
		Float64("future_value", result.FutureValue).
		Msg("lump sum calculated")

	return report, nil
}

// CalculateRegularContribution computes the result and yearly series of a
// fixed monthly contribution.
func (s *InvestmentService) CalculateRegularContribution(
	ctx context.Context,
	input domain.RegularContributionInput,
) (domain.RegularContributionReport, error) {

	if s.opts.UseDefaults {
		input = ApplyContributionDefaults(input)
	}
	freq := input.Frequency.Resolve()

	if err := checkLimits("monthly_payment", input.MonthlyPayment, MaxPayment, input.RatePercent, input.Years, freq); err != nil {
		return domain.RegularContributionReport{}, err
	}

	rate := percentToDecimal(input.RatePercent)
	key := s.cacheKey("regular", input.MonthlyPayment, rate, input.Years, freq)

	var entry contributionEntry
	if !s.lookup(ctx, key, &entry) {
		result, err := s.calc.RegularContribution(input.MonthlyPayment, rate, input.Years, freq)
		if err != nil {
			return domain.RegularContributionReport{}, err
		}
		series, err := s.calc.ContributionSeries(input.MonthlyPayment, rate, input.Years, freq)
		if err != nil {
			return domain.RegularContributionReport{}, err
		}
		entry = contributionEntry{Result: result, Series: series}
		s.store(ctx, key, entry)
	}

	result := entry.Result
	report := domain.RegularContributionReport{
		Result:    result,
		Series:    entry.Series,
		Formatted: s.format(result.TotalPrincipal, result.FutureValue, result.TotalInterest, result.ReturnRatePercent),
	}

	s.log.Debug().
		Float64("monthly_payment", result.PeriodicPayment).
		Float64("rate", rate).
		Int("years", result.Years).
		Int("frequency", int(freq)).
		Float64("future_value", result.FutureValue).
		Msg("regular contribution calculated")

	return report, nil
}

// Cache entries hold only calculator output; display strings depend on
// per-instance options and are rebuilt on every call.
type lumpSumEntry struct {
	Result domain.LumpSumResult    `json:"result"`
	Series []domain.AnnualSnapshot `json:"series"`
}

type contributionEntry struct {
	Result domain.RegularContributionResult `json:"result"`
	Series []domain.AnnualSnapshot          `json:"series"`
}

func (s *InvestmentService) format(principal, futureValue, interest, returnRate float64) domain.FormattedResult {
	return domain.FormattedResult{
		Principal:   FormatCurrency(principal, s.opts.CurrencySymbol),
		FutureValue: FormatCurrency(futureValue, s.opts.CurrencySymbol),
		Interest:    FormatCurrency(interest, s.opts.CurrencySymbol),
		ReturnRate:  FormatPercentage(returnRate),
	}
}

// lookup decodes a cached entry into dst. Cache problems are logged and
// treated as a miss.
func (s *InvestmentService) lookup(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache lookup failed")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return false
	}

	s.log.Debug().Str("key", key).Msg("cache hit")
	return true
}

func (s *InvestmentService) store(ctx context.Context, key string, entry any) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.opts.CacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache result")
	}
}

// ApplyLumpSumDefaults fills zero-valued fields with the Default* constants.
func ApplyLumpSumDefaults(in domain.LumpSumInput) domain.LumpSumInput {
	if in.Principal == 0 {
		in.Principal = DefaultPrincipal
	}
	if in.RatePercent == 0 {
		in.RatePercent = DefaultRatePercent
	}
	if in.Years == 0 {
		in.Years = DefaultYears
	}
	return in
}

// ApplyContributionDefaults fills zero-valued fields with the Default* constants.
func ApplyContributionDefaults(in domain.RegularContributionInput) domain.RegularContributionInput {
	if in.MonthlyPayment == 0 {
		in.MonthlyPayment = DefaultMonthlyPayment
	}
	if in.RatePercent == 0 {
		in.RatePercent = DefaultRatePercent
	}
	if in.Years == 0 {
		in.Years = DefaultYears
	}
	return in
}

// checkLimits rejects non-finite inputs and inputs above the service's upper
// bounds. Lower bounds are enforced by the calculator.
func checkLimits(amountField string, amount, maxAmount, ratePercent float64, years int, freq domain.CompoundFrequency) error {
	if err := finite(amountField, amount); err != nil {
		return err
	}
	if err := finite("rate", ratePercent); err != nil {
		return err
	}
	if amount > maxAmount {
		return &domain.InvalidParameterError{
			Field:  amountField,
			Value:  amount,
			Reason: fmt.Sprintf("exceeds the maximum of %.2f", maxAmount),
		}
	}
	if ratePercent > MaxRatePercent {
		return &domain.InvalidParameterError{
			Field:  "rate",
			Value:  ratePercent,
			Reason: fmt.Sprintf("exceeds the maximum of %.2f%%", MaxRatePercent),
		}
	}
	if years > MaxYears {
		return &domain.InvalidParameterError{
			Field:  "years",
			Value:  float64(years),
			Reason: fmt.Sprintf("exceeds the maximum of %d years", MaxYears),
		}
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

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &domain.InvalidParameterError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	return nil
}

// percentToDecimal converts 8 (percent) to 0.08 via its decimal representation.
func percentToDecimal(percent float64) float64 {
	rate, _ := decimal.NewFromFloat(percent).Shift(-2).Float64()
	return rate
}

// cacheKey identifies a calculation: its inputs plus the calculator mode,
// since the annuity shortcut may differ from the simulation in the last bits.
func (s *InvestmentService) cacheKey(kind string, amount, rate float64, years int, freq domain.CompoundFrequency) string {
	mode := "sim"
	if s.calc.AnnuityShortcut {
		mode = "annuity"
	}
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d",
		kind,
		mode,
		decimal.NewFromFloat(amount).String(),
		decimal.NewFromFloat(rate).String(),
		years,
		freq,
	)
}
