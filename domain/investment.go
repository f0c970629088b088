package domain

type LumpSumResult struct {
	Principal         float64           `json:"principal"`
	FutureValue       float64           `json:"future_value"`
	TotalInterest     float64           `json:"total_interest"`
	ReturnRatePercent float64           `json:"return_rate_percent"`
	Rate              float64           `json:"rate"`
	Years             int               `json:"years"`
	Frequency         CompoundFrequency `json:"frequency"`
}

type RegularContributionResult struct {
	PeriodicPayment   float64           `json:"periodic_payment"`
	TotalPrincipal    float64           `json:"total_principal"`
	FutureValue       float64           `json:"future_value"`
	TotalInterest     float64           `json:"total_interest"`
	ReturnRatePercent float64           `json:"return_rate_percent"`
	Rate              float64           `json:"rate"`
	Years             int               `json:"years"`
	Frequency         CompoundFrequency `json:"frequency"`
}

// AnnualSnapshot is the state of an investment at the end of a year.
// Year 0 is the initial state.
type AnnualSnapshot struct {
	Year            int     `json:"year"`
	Value           float64 `json:"value"`
	PrincipalToDate float64 `json:"principal_to_date"`
	InterestToDate  float64 `json:"interest_to_date"`
}

// ReturnRatePercent is interest relative to principal, 0 when principal is 0.
func ReturnRatePercent(interest, principal float64) float64 {
	if principal == 0 {
		return 0
	}
	return interest / principal * 100
}
