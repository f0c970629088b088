package domain

// Rates on the inputs below are whole percent (8 means 8%), as typed by a user.

type LumpSumInput struct {
	Principal   float64       `json:"principal"`
	RatePercent float64       `json:"rate"`
	Years       int           `json:"years"`
	Frequency   FrequencySpec `json:"frequency"`
}

type RegularContributionInput struct {
	MonthlyPayment float64       `json:"monthly_payment"`
	RatePercent    float64       `json:"rate"`
	Years          int           `json:"years"`
	Frequency      FrequencySpec `json:"frequency"`
}

type ComparisonInput struct {
	Principal      float64       `json:"principal"`
	MonthlyPayment float64       `json:"monthly_payment"`
	RatePercent    float64       `json:"rate"`
	Years          int           `json:"years"`
	Frequency      FrequencySpec `json:"frequency"`
}

type LumpSumReport struct {
	Result    LumpSumResult    `json:"result"`
	Series    []AnnualSnapshot `json:"series"`
	Formatted FormattedResult  `json:"formatted"`
}

type RegularContributionReport struct {
	Result    RegularContributionResult `json:"result"`
	Series    []AnnualSnapshot          `json:"series"`
	Formatted FormattedResult           `json:"formatted"`
}

// FormattedResult holds display strings for a result.
type FormattedResult struct {
	Principal   string `json:"principal"`
	FutureValue string `json:"future_value"`
	Interest    string `json:"interest"`
	ReturnRate  string `json:"return_rate"`
}

type ComparisonPoint struct {
	Year              int     `json:"year"`
	LumpSumValue      float64 `json:"lump_sum_value"`
	ContributionValue float64 `json:"contribution_value"`
	Difference        float64 `json:"difference"`
}

type ComparisonResult struct {
	LumpSum      LumpSumResult             `json:"lump_sum"`
	Contribution RegularContributionResult `json:"contribution"`
	Points       []ComparisonPoint         `json:"points"`
	Winner       string                    `json:"winner"` // "lump_sum", "contribution" or "tie"
}
